package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/ngpack/internal/adapters/cas"
	"go.trai.ch/ngpack/internal/adapters/config"
	"go.trai.ch/ngpack/internal/adapters/fs"
	"go.trai.ch/ngpack/internal/app"
	"go.trai.ch/ngpack/internal/core/domain"
	"go.trai.ch/ngpack/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func testProvider(t *testing.T, fsys afero.Fs) (ComponentProvider, *mocks.MockLogger) {
	t.Helper()

	log := mocks.NewMockLogger(gomock.NewController(t))
	settings := config.Settings{LogFormat: config.LogFormatPretty, StateDir: "/state", Manifest: "/ngpack.yaml"}
	a := app.New(
		fs.NewStorage(fsys, fs.NewWalker(fsys)),
		config.NewLoader(fsys),
		log,
		cas.NewStore(fsys, settings.StateDir),
		fs.NewHasher(fsys),
		nil,
		settings,
	)

	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}, log
}

func TestRun_Version(t *testing.T) {
	fsys := afero.NewMemMapFs()
	provider, _ := testProvider(t, fsys)

	stdout := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), fsys, provider)

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout.String(), "ngpack version")
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	code := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, afero.NewMemMapFs(), provider)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

func TestRun_PackageFailureIsLogged(t *testing.T) {
	fsys := afero.NewMemMapFs()
	provider, log := testProvider(t, fsys)

	var logged error
	log.EXPECT().Error(gomock.Any()).Do(func(err error) { logged = err })

	code := run(context.Background(), []string{"package", "--out", "/out"}, new(bytes.Buffer), new(bytes.Buffer), fsys, provider)

	assert.Equal(t, 1, code)
	require.Error(t, logged)
	assert.ErrorContains(t, logged, domain.ErrMissingRunParam.Error())
}

func TestRun_ParamFileExpansion(t *testing.T) {
	fsys := afero.NewMemMapFs()
	files := map[string]string{
		"/bin/fesm2015/core.js": "core es2015",
		"/bin/fesm5/core.js":    "core es5",
		"/bin/pkg/core.d.ts":    "export {};\n",
		"/src/package.json":     `{"name":"core"}`,
		"/args.params": "package\n--out=/out\n--src-root='/src'\n--bin-root=/bin/pkg\n" +
			"--fesm2015=/bin/fesm2015/core.js\n--fesm5=/bin/fesm5/core.js\n--srcs=/src/package.json\n",
	}
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), domain.FilePerm))
	}

	provider, log := testProvider(t, fsys)
	log.EXPECT().Info("packaged core into /out (4 files)")

	code := run(context.Background(), []string{"@/args.params"}, new(bytes.Buffer), new(bytes.Buffer), fsys, provider)
	require.Equal(t, 0, code)

	data, err := afero.ReadFile(fsys, "/out/package.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"typings": "./core.d.ts"`)
}

func TestRun_ParamFileMissing(t *testing.T) {
	fsys := afero.NewMemMapFs()
	provider, log := testProvider(t, fsys)
	log.EXPECT().Error(gomock.Any())

	code := run(context.Background(), []string{"@/missing.params"}, new(bytes.Buffer), new(bytes.Buffer), fsys, provider)
	assert.Equal(t, 1, code)
}
