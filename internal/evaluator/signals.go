package evaluator

import "github.com/quest-lang/quest/internal/object"

// breakSignal, continueSignal, and returnSignal are internal Values used
// only to carry non-local control transfer up through Eval's return
// channel; no Quest expression ever observes one directly. They share the
// ValueType string "signal" since nothing external switches on it.
const signalValueType object.ValueType = "signal"

type breakSignal struct{}

func (breakSignal) Type() object.ValueType { return signalValueType }
func (breakSignal) Inspect() string        { return "<break>" }
func (breakSignal) Truthy() bool           { return false }

type continueSignal struct{}

func (continueSignal) Type() object.ValueType { return signalValueType }
func (continueSignal) Inspect() string        { return "<continue>" }
func (continueSignal) Truthy() bool           { return false }

type returnSignal struct{ Value object.Value }

func (r returnSignal) Type() object.ValueType { return signalValueType }
func (r returnSignal) Inspect() string        { return "<return " + r.Value.Inspect() + ">" }
func (r returnSignal) Truthy() bool           { return r.Value.Truthy() }
