package ports

// Digester computes content digests of packaged files.
//
//go:generate mockgen -source=digester.go -destination=mocks/mock_digester.go -package=mocks
type Digester interface {
	// DigestFiles returns a single digest over the given files.
	// The result does not depend on the order of paths.
	DigestFiles(paths []string) (string, error)
}
