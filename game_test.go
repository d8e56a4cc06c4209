package main

import (
	"context"
	"testing"
)

func TestUpdateAppliesBufferedMessages(t *testing.T) {
	adapter := newWSAdapter("ws://test")
	adapter.connected.Store(true)
	adapter.messages <- `{"command":"insert","shape":"sphere"}`
	g := newGame(context.Background(), adapter)
	if err := g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.world.shapes.active == nil {
		t.Fatal("buffered insert was not applied")
	}
}

func TestUpdateDropsRemnantsWhileDisconnected(t *testing.T) {
	adapter := newWSAdapter("ws://test")
	adapter.messages <- `{"command":"insert","shape":"sphere"}`
	adapter.messages <- `{"command":"selectXY","x":"50","y":"50"}`
	g := newGame(context.Background(), adapter)
	if err := g.Update(); err != nil {
		t.Fatalf("update: %v", err)
	}
	if g.world.seq != seqIdle || g.world.shapes.active != nil {
		t.Fatal("placement cycle advanced while disconnected")
	}
	if g.world.dropped != 2 {
		t.Fatalf("dropped %d", g.world.dropped)
	}
}

func TestUpdateStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	g := newGame(ctx, newWSAdapter("ws://test"))
	cancel()
	if err := g.Update(); err == nil {
		t.Fatal("expected termination after cancel")
	}
}
