package logging

import "fmt"

// KVLogger is the keys-and-values logging contract produced by KeyValues
// (alternating key, value arguments).  It matches the logger interface the
// uncertainty core accepts structurally, so this package never imports the
// core.
type KVLogger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

type kvLogger struct {
	l Logger
}

// KeyValues wraps a Logger so it can be injected into the uncertainty core
// via uncertainty.WithLogger.
func KeyValues(l Logger) KVLogger {
	return &kvLogger{l: l}
}

// toFields converts alternating key-value arguments to Fields.  A trailing
// key without a value, or a non-string key, is preserved under a synthetic
// key rather than dropped.
func toFields(keysAndValues []interface{}) []Field {
	fields := make([]Field, 0, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); i += 2 {
		if i+1 >= len(keysAndValues) {
			fields = append(fields, Any("dangling", keysAndValues[i]))
			break
		}
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("arg%d", i)
		}
		fields = append(fields, Any(key, keysAndValues[i+1]))
	}
	return fields
}

func (k *kvLogger) Debug(msg string, keysAndValues ...interface{}) {
	k.l.Debug(msg, toFields(keysAndValues)...)
}

func (k *kvLogger) Info(msg string, keysAndValues ...interface{}) {
	k.l.Info(msg, toFields(keysAndValues)...)
}

func (k *kvLogger) Warn(msg string, keysAndValues ...interface{}) {
	k.l.Warn(msg, toFields(keysAndValues)...)
}

func (k *kvLogger) Error(msg string, keysAndValues ...interface{}) {
	k.l.Error(msg, toFields(keysAndValues)...)
}
