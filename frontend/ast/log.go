package ast

import (
	"log/slog"
)

// Slog wraps a Node as a slog.LogValuer to not render node strings
// unless they definitely need to be logged
func Slog(node Node) slog.LogValuer {
	return nodeLogValuer{node}
}

type nodeLogValuer struct{ Node }

func (l nodeLogValuer) LogValue() slog.Value {
	return slog.StringValue(Show(l.Node))
}
