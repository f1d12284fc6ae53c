package logger

import (
	"time"

	"go.uber.org/zap"
)

// HTTP fields

func RequestID(v string) zap.Field { return zap.String("request_id", v) }

func Method(v string) zap.Field { return zap.String("method", v) }

func Path(v string) zap.Field { return zap.String("path", v) }

func Status(v int) zap.Field { return zap.Int("status", v) }

func Duration(v time.Duration) zap.Field { return zap.Duration("duration", v) }

func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

func Bytes(v int) zap.Field { return zap.Int("bytes", v) }

func ClientIP(v string) zap.Field { return zap.String("client_ip", v) }

// Domain fields

// Provider tags entries with the social-login provider (github/google/facebook).
func Provider(v string) zap.Field { return zap.String("provider", v) }

func UserID(v string) zap.Field { return zap.String("user_id", v) }

func CourseID(v string) zap.Field { return zap.String("course_id", v) }

// Email should be used sparingly in prod logs.
func Email(v string) zap.Field { return zap.String("email", v) }

// System fields

// Op names the current operation (e.g. "CallbackController.Callback").
func Op(v string) zap.Field { return zap.String("op", v) }

// Layer names the layer emitting the entry (controller, service, store).
func Layer(v string) zap.Field { return zap.String("layer", v) }

func Err(err error) zap.Field { return zap.Error(err) }

func String(k, v string) zap.Field { return zap.String(k, v) }

func Int(k string, v int) zap.Field { return zap.Int(k, v) }

func Any(k string, v any) zap.Field { return zap.Any(k, v) }
