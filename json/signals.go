package json

import (
	"context"

	"github.com/zoobzio/capitan"
)

// Signals for codec build events.
var (
	SignalCodecBuilt        = capitan.NewSignal("relish.json.codec.built", "JSON codec configured")
	SignalAdapterRegistered = capitan.NewSignal("relish.json.adapter.registered", "Type adapter registered")
)

// Keys for typed event data.
var (
	KeyTargetType    = capitan.NewStringKey("target_type")
	KeyAdapter       = capitan.NewStringKey("adapter")
	KeyNamingPolicy  = capitan.NewStringKey("naming_policy")
	KeyAdapterCount  = capitan.NewIntKey("adapter_count")
	KeyStrategyCount = capitan.NewIntKey("strategy_count")
)

// emitAdapterRegistered emits an event for each adapter registration.
func emitAdapterRegistered(ctx context.Context, targetType, adapter string) {
	capitan.Emit(ctx, SignalAdapterRegistered,
		KeyTargetType.Field(targetType),
		KeyAdapter.Field(adapter),
	)
}

// emitCodecBuilt emits an event when a codec build completes.
func emitCodecBuilt(ctx context.Context, policy string, adapterCount, strategyCount int) {
	capitan.Emit(ctx, SignalCodecBuilt,
		KeyNamingPolicy.Field(policy),
		KeyAdapterCount.Field(adapterCount),
		KeyStrategyCount.Field(strategyCount),
	)
}
