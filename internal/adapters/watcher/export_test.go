package watcher

var ConvertOp = convertOp
