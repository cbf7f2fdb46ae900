// Package mocks provides an Otel that records nothing, for tests and for
// wiring code paths that do not need a tracer.
package mocks

import (
	"context"
	"roombook/infras/otel"
)

type noopOtel struct{}

type noopScope struct{}

var (
	_ otel.Otel  = noopOtel{}
	_ otel.Scope = noopScope{}
)

func NewOtel() otel.Otel {
	return noopOtel{}
}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopOtel) Shutdown(context.Context) error { return nil }

func (noopScope) End() {}
func (noopScope) TraceError(error) {}
func (noopScope) TraceIfError(error) {}
func (noopScope) AddEvent(string) {}
func (noopScope) SetAttribute(string, any) {}
func (noopScope) SetAttributes(map[string]any) {}
func (noopScope) TraceID() string { return "" }
