package watch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedProbe returns the next result on each call and repeats the last one.
type scriptedProbe struct {
	results []probeResult
	calls   int
}

type probeResult struct {
	online bool
	err    error
}

func (p *scriptedProbe) probe(context.Context) (bool, error) {
	i := p.calls
	if i >= len(p.results) {
		i = len(p.results) - 1
	}
	p.calls++
	return p.results[i].online, p.results[i].err
}

func TestConnectivity_ReportsFirstValueAndChanges(t *testing.T) {
	p := &scriptedProbe{results: []probeResult{
		{online: true},
		{online: true},
		{online: false},
		{online: false},
		{online: true},
	}}
	c := NewConnectivity(p.probe, time.Hour)

	var reports []bool
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Install(ctx, func(offline bool) { reports = append(reports, offline) }))

	for i := 0; i < 4; i++ {
		c.Check(ctx)
	}

	assert.Equal(t, []bool{false, true, false}, reports)
	assert.False(t, c.Offline())
}

func TestConnectivity_ProbeErrorKeepsLastValue(t *testing.T) {
	p := &scriptedProbe{results: []probeResult{
		{online: false},
		{err: errors.New("no netlink")},
	}}
	c := NewConnectivity(p.probe, time.Hour)

	var reports []bool
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Install(ctx, func(offline bool) { reports = append(reports, offline) }))
	c.Check(ctx)

	assert.Equal(t, []bool{true}, reports)
	assert.True(t, c.Offline())
}

func TestConnectivity_FirstProbeErrorReportsDefault(t *testing.T) {
	p := &scriptedProbe{results: []probeResult{{err: errors.New("unsupported")}}}
	c := NewConnectivity(p.probe, time.Hour)

	var reports []bool
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, c.Install(ctx, func(offline bool) { reports = append(reports, offline) }))

	assert.Equal(t, []bool{false}, reports, "undetermined connectivity defaults to online")
}

func TestConnectivity_InstallOnce(t *testing.T) {
	p := &scriptedProbe{results: []probeResult{{online: true}}}
	c := NewConnectivity(p.probe, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, c.Install(ctx, func(bool) {}))
	assert.ErrorIs(t, c.Install(ctx, func(bool) {}), ErrAlreadyInstalled)
}

func TestBreakpoint(t *testing.T) {
	b := NewBreakpoint(100)

	b.Observe(120)

	var reports []bool
	require.NoError(t, b.Install(func(m bool) { reports = append(reports, m) }))
	assert.Equal(t, []bool{true}, reports, "install reports an already observed width")

	b.Observe(130)
	b.Observe(0)
	b.Observe(80)
	b.Observe(60)
	b.Observe(100)

	assert.Equal(t, []bool{true, false, true}, reports)
	assert.True(t, b.Matches())
	assert.ErrorIs(t, b.Install(func(bool) {}), ErrAlreadyInstalled)
}

func TestBreakpoint_InstallBeforeObserve(t *testing.T) {
	b := NewBreakpoint(100)

	var reports []bool
	require.NoError(t, b.Install(func(m bool) { reports = append(reports, m) }))
	assert.Empty(t, reports)

	b.Observe(40)
	assert.Equal(t, []bool{false}, reports)
}
