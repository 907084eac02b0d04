package roster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRoster implements SamplerSource for testing
type stubRoster struct {
	samplers []Sampler
	err      error
}

func (s stubRoster) ListSamplers(ctx context.Context) ([]Sampler, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.samplers, nil
}

func testDeps(samplers ...Sampler) Deps {
	return Deps{
		Samplers: stubRoster{samplers: samplers},
		Loading:  stubSource{},
		MiscJobs: stubSource{},
	}
}

func localStamp(t time.Time) string {
	return t.Format("2006-01-02T15:04")
}

func TestAutogenerate_FullRun(t *testing.T) {
	in := Input{
		StartDischarge:       localStamp(mar(4, 10, 0)),
		DischargeTimeHours:   14,
		RequiresLineSampling: true,
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana"), activeSampler("Ben")))

	assert.True(t, res.Success)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Shifts, 2)
	assert.Equal(t, mar(4, 10, 0), res.Shifts[0].Start)
	assert.Equal(t, mar(4, 19, 0), res.Shifts[0].End)
	assert.Equal(t, mar(5, 0, 0), res.Shifts[1].End)
	assert.NotEmpty(t, res.Shifts[0].Sampler)
	assert.NotEmpty(t, res.Shifts[1].Sampler)
	assert.NotEmpty(t, res.DecisionLog)
}

func TestAutogenerate_InvalidStartDischarge(t *testing.T) {
	in := Input{StartDischarge: "not a date", DischargeTimeHours: 12, RequiresLineSampling: true}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana")))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Invalid start discharge")
	assert.Empty(t, res.Shifts)
}

func TestAutogenerate_NonPositiveDuration(t *testing.T) {
	in := Input{StartDischarge: localStamp(mar(4, 10, 0)), DischargeTimeHours: 0, RequiresLineSampling: true}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana")))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "positive")
}

func TestAutogenerate_SamplerRosterFailureIsFatal(t *testing.T) {
	in := Input{StartDischarge: localStamp(mar(4, 10, 0)), DischargeTimeHours: 14, RequiresLineSampling: true}
	deps := Deps{
		Samplers: stubRoster{err: errors.New("roster unavailable")},
		Loading:  stubSource{},
		MiscJobs: stubSource{},
	}

	res := Autogenerate(context.Background(), in, deps)

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Failed to fetch samplers")
	assert.Empty(t, res.Shifts)
}

func TestAutogenerate_DegradedConflictSourceStillCompletes(t *testing.T) {
	in := Input{
		StartDischarge:       localStamp(mar(4, 10, 0)),
		DischargeTimeHours:   14,
		RequiresLineSampling: true,
	}
	deps := Deps{
		Samplers: stubRoster{samplers: []Sampler{activeSampler("Ana"), activeSampler("Ben")}},
		Loading:  stubSource{err: errors.New("timeout")},
		MiscJobs: stubSource{},
	}

	res := Autogenerate(context.Background(), in, deps)

	assert.True(t, res.Success)
	require.Len(t, res.Shifts, 2)
	degraded := false
	for _, w := range res.Warnings {
		if containsAll(w, "loading-job") {
			degraded = true
		}
	}
	assert.True(t, degraded, "expected a warning about the failed loading-job source")
}

func TestAutogenerate_TerminalBypassMode(t *testing.T) {
	// ETC 2024-03-10 08:00 yields a single unassigned 07:00-11:00 window.
	in := Input{
		StartDischarge:       localStamp(mar(9, 20, 0)),
		RequiresLineSampling: false,
		ETC:                  localStamp(mar(10, 8, 0)),
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana")))

	assert.True(t, res.Success)
	require.Len(t, res.Shifts, 1)
	assert.Equal(t, mar(10, 7, 0), res.Shifts[0].Start)
	assert.Equal(t, mar(10, 11, 0), res.Shifts[0].End)
	assert.Empty(t, res.Shifts[0].Sampler)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "manually")
}

func TestAutogenerate_TerminalBypassRequiresETC(t *testing.T) {
	in := Input{
		StartDischarge:       localStamp(mar(9, 20, 0)),
		RequiresLineSampling: false,
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana")))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "ETC is required")
}

func TestAutogenerate_TerminalBypassRejectsBadETC(t *testing.T) {
	in := Input{
		StartDischarge:       localStamp(mar(9, 20, 0)),
		RequiresLineSampling: false,
		ETC:                  "soon",
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana")))

	assert.False(t, res.Success)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "Invalid ETC")
}

func TestAutogenerate_RestrictedOnlySamplerFailsRun(t *testing.T) {
	// Saturday-only coverage with the sole sampler barred from weekends:
	// every shift stays open and the run reports failure with partial output.
	weekendRestricted := activeSampler("Ana")
	weekendRestricted.RestrictedWeekdays = []time.Weekday{time.Sunday, time.Saturday}
	in := Input{
		StartDischarge:       localStamp(mar(9, 7, 0)), // Saturday
		DischargeTimeHours:   12,
		RequiresLineSampling: true,
	}

	res := Autogenerate(context.Background(), in, testDeps(weekendRestricted))

	assert.False(t, res.Success)
	require.Len(t, res.Shifts, 1)
	assert.Empty(t, res.Shifts[0].Sampler)
	assert.NotEmpty(t, res.Warnings)
	assert.NotEmpty(t, res.Errors)
}

func TestAutogenerate_CurrentShiftsCountAsCommitments(t *testing.T) {
	// Ana already holds a line sampling row that overlaps the first shift.
	in := Input{
		StartDischarge:       localStamp(mar(4, 10, 0)),
		DischargeTimeHours:   9,
		RequiresLineSampling: true,
		CurrentShifts: []Shift{
			{Start: mar(4, 8, 0), End: mar(4, 12, 0), Sampler: "Ana"},
		},
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana"), activeSampler("Ben")))

	require.Len(t, res.Shifts, 1)
	assert.Equal(t, "Ben", res.Shifts[0].Sampler)
}

func TestAutogenerate_UnavailabilityBlocksAssignment(t *testing.T) {
	in := Input{
		StartDischarge:       localStamp(mar(4, 10, 0)),
		DischargeTimeHours:   9,
		RequiresLineSampling: true,
		Unavailability: []Interval{
			{Sampler: "Ana", Start: mar(4, 0, 0), End: mar(5, 0, 0)},
		},
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana"), activeSampler("Ben")))

	require.Len(t, res.Shifts, 1)
	assert.Equal(t, "Ben", res.Shifts[0].Sampler)
}

func TestAutogenerate_OfficeContinuationEndToEnd(t *testing.T) {
	in := Input{
		StartDischarge:        localStamp(mar(4, 20, 0)),
		DischargeTimeHours:    11,
		RequiresLineSampling:  true,
		OfficeSamplingSampler: "Ben",
		OfficeSamplingStart:   localStamp(mar(4, 19, 30)),
		OfficeSamplingFinish:  localStamp(mar(4, 20, 0)),
	}

	res := Autogenerate(context.Background(), in, testDeps(activeSampler("Ana"), activeSampler("Ben")))

	assert.True(t, res.Success)
	require.Len(t, res.Shifts, 1)
	assert.Equal(t, "Ben", res.Shifts[0].Sampler)
}

func TestParseInstant(t *testing.T) {
	got, err := ParseInstant("2024-03-04T10:00")
	require.NoError(t, err)
	assert.Equal(t, mar(4, 10, 0), got)

	got, err = ParseInstant("2024-03-04 10:00")
	require.NoError(t, err)
	assert.Equal(t, mar(4, 10, 0), got)

	_, err = ParseInstant("2024-03-04T10:00:00Z")
	require.NoError(t, err)

	_, err = ParseInstant("whenever")
	assert.Error(t, err)
}
