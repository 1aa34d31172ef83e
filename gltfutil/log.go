package gltfutil

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger sets the logger that reports document data skipped by this package.
// nil restores the default, which discards everything. Not safe to call
// concurrently with other functions of the package.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}
