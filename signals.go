package relish

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for converter events.
var (
	SignalConverterCreated = capitan.NewSignal("relish.converter.created", "Converter instantiated")
	SignalReadStart        = capitan.NewSignal("relish.read.start", "Read operation beginning")
	SignalReadComplete     = capitan.NewSignal("relish.read.complete", "Read operation finished")
	SignalWriteStart       = capitan.NewSignal("relish.write.start", "Write operation beginning")
	SignalWriteComplete    = capitan.NewSignal("relish.write.complete", "Write operation finished")
)

// Keys for typed event data.
var (
	KeyMediaType = capitan.NewStringKey("media_type")
	KeyTypeName  = capitan.NewStringKey("type_name")
	KeySize      = capitan.NewIntKey("size")
	KeyDuration  = capitan.NewDurationKey("duration")
	KeyError     = capitan.NewErrorKey("error")
)

// emitConverterCreated emits an event when a converter is created.
func emitConverterCreated(ctx context.Context, contentType string) {
	capitan.Emit(ctx, SignalConverterCreated,
		KeyMediaType.Field(contentType),
	)
}

// emitReadStart emits an event when a body read begins.
func emitReadStart(ctx context.Context, mediaType, typeName string) {
	capitan.Emit(ctx, SignalReadStart,
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
	)
}

// emitReadComplete emits an event when a body read finishes.
func emitReadComplete(ctx context.Context, mediaType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, fields...)
	}
}

// emitWriteStart emits an event when a body write begins.
func emitWriteStart(ctx context.Context, mediaType, typeName string) {
	capitan.Emit(ctx, SignalWriteStart,
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
	)
}

// emitWriteComplete emits an event when a body write finishes.
func emitWriteComplete(ctx context.Context, mediaType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyMediaType.Field(mediaType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, fields...)
	}
}
