package smscount

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smscount/gsm7"
	"github.com/npillmayer/smscount/internal/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatinSample(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, err := testdata.Sample(testdata.Latin)
	require.NoError(t, err)
	res, err := Analyze(text)
	require.NoError(t, err)
	assert.Equal(t, Result{
		Encoding:   gsm7.GSM7Bit,
		Length:     574,
		Messages:   4,
		PerMessage: 153,
		Remaining:  38,
	}, res)
}

func TestTurkishSample(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	text, err := testdata.Sample(testdata.Turkish)
	require.NoError(t, err)
	res, err := Analyze(text)
	require.NoError(t, err)
	assert.Equal(t, Result{
		Encoding:   gsm7.UCS2,
		Length:     590,
		Messages:   9,
		PerMessage: 67,
		Remaining:  13,
	}, res)
}

func TestAnalyze(t *testing.T) {
	hundred := strings.Repeat("0123456789", 10)
	tcs := []struct {
		text string
		res  Result
	}{
		{"", Result{gsm7.GSM7Bit, 0, 0, 160, 160}},
		{"€", Result{gsm7.GSM7BitExtended, 2, 1, 160, 158}},
		{"hello", Result{gsm7.GSM7Bit, 5, 1, 160, 155}},
		{hundred + hundred[:60], Result{gsm7.GSM7Bit, 160, 1, 160, 0}},
		{hundred + hundred[:61], Result{gsm7.GSM7Bit, 161, 2, 153, 145}},
		{hundred + hundred[:59] + "{", Result{gsm7.GSM7BitExtended, 161, 2, 153, 145}},
		{"ş", Result{gsm7.UCS2, 1, 1, 70, 69}},
		{"😀", Result{gsm7.UCS2, 2, 1, 70, 68}},
		{strings.Repeat("ş", 70), Result{gsm7.UCS2, 70, 1, 70, 0}},
		{strings.Repeat("ş", 71), Result{gsm7.UCS2, 71, 2, 67, 63}},
		{strings.Repeat("a", 306), Result{gsm7.GSM7Bit, 306, 2, 153, 0}},
		// extension characters do not count twice in UCS-2
		{"€ş", Result{gsm7.UCS2, 2, 1, 70, 68}},
	}
	for _, tc := range tcs {
		res, err := Analyze(tc.text)
		require.NoError(t, err)
		assert.Equal(t, tc.res, res, "unexpected result for %q", tc.text)
	}
}

func TestAnalyzeInvalid(t *testing.T) {
	_, err := Analyze("abc\xff")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid UTF-8 to be rejected, got %v", err)
	}
}

func TestAnalyzeInvalidOffset(t *testing.T) {
	text := strings.Repeat("ş", 5000) + "\xff" + strings.Repeat("a", 5000)
	_, err := Analyze(text)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at byte 10000")
	if len(err.Error()) > 200 {
		t.Errorf("expected error message not to contain the text, has %d bytes", len(err.Error()))
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	text := "Grüße aus Köln – {bis bald}"
	r1, err1 := Analyze(text)
	r2, err2 := Analyze(text)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2)
}

func TestAnalyzeUnits(t *testing.T) {
	res := AnalyzeUnits(nil)
	assert.Equal(t, Result{gsm7.GSM7Bit, 0, 0, 160, 160}, res)
	res = AnalyzeUnits([]uint16{'a', 0x20AC, 'b'})
	assert.Equal(t, Result{gsm7.GSM7BitExtended, 4, 1, 160, 156}, res)
}

func TestComputeProperties(t *testing.T) {
	for _, enc := range []gsm7.Encoding{gsm7.GSM7Bit, gsm7.GSM7BitExtended, gsm7.UCS2} {
		for length := 1; length <= 2000; length++ {
			res, err := Compute(enc, length)
			if err != nil {
				t.Fatalf("compute(%s, %d) failed: %v", enc, length, err)
			}
			if res.PerMessage != SingleCapacity(enc) && res.PerMessage != MultiCapacity(enc) {
				t.Fatalf("compute(%s, %d): unexpected capacity %d", enc, length, res.PerMessage)
			}
			if res.PerMessage*res.Messages < length || res.PerMessage*(res.Messages-1) >= length {
				t.Fatalf("compute(%s, %d): %d messages do not fit", enc, length, res.Messages)
			}
			if res.Remaining < 0 || res.Remaining >= res.PerMessage {
				t.Fatalf("compute(%s, %d): remaining %d out of range", enc, length, res.Remaining)
			}
		}
	}
}

func TestComputeLarge(t *testing.T) {
	for _, enc := range []gsm7.Encoding{gsm7.GSM7Bit, gsm7.UCS2} {
		res, err := Compute(enc, math.MaxInt)
		require.NoError(t, err)
		per := MultiCapacity(enc)
		assert.Equal(t, math.MaxInt/per+1, res.Messages, "messages for %s", enc)
		assert.Equal(t, per-math.MaxInt%per, res.Remaining, "remaining for %s", enc)
	}
}

func TestComputeInvalid(t *testing.T) {
	_, err := Compute(gsm7.Encoding(9), 10)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	_, err = Compute(gsm7.UCS2, -1)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Equal(t, 0, SingleCapacity(gsm7.Encoding(-1)))
	assert.Equal(t, 0, MultiCapacity(gsm7.Encoding(3)))
}

func TestCapacities(t *testing.T) {
	assert.Equal(t, 160, SingleCapacity(gsm7.GSM7Bit))
	assert.Equal(t, 160, SingleCapacity(gsm7.GSM7BitExtended))
	assert.Equal(t, 70, SingleCapacity(gsm7.UCS2))
	assert.Equal(t, 153, MultiCapacity(gsm7.GSM7Bit))
	assert.Equal(t, 153, MultiCapacity(gsm7.GSM7BitExtended))
	assert.Equal(t, 67, MultiCapacity(gsm7.UCS2))
}
