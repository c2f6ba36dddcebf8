package fallible

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type ConvertTestEnviron struct {
	suite.Suite
	errNoRow error
}

// listen for 'go test' command --> run test methods
func TestConversions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fallible")
	defer teardown()
	suite.Run(t, new(ConvertTestEnviron))
}

// run once, before test suite methods
func (env *ConvertTestEnviron) SetupSuite() {
	env.T().Log("Setting up conversion test suite")
	env.errNoRow = errors.New("no such row")
}

// --- Tests -----------------------------------------------------------------

func (env *ConvertTestEnviron) TestOptionToResult() {
	r := Some("alice").ToResult(env.errNoRow)
	env.True(r.IsOk(), "a present value should convert to an Ok result")
	env.Equal("alice", r.MustUnwrap())
	//
	r = None[string]().ToResult(env.errNoRow)
	env.Require().True(r.IsErr(), "an empty option should convert to an Err result")
	env.Equal(env.errNoRow, r.Err(), "expected the supplied error to be carried verbatim")
}

func (env *ConvertTestEnviron) TestOptionToResultLazy() {
	calls := 0
	supply := func() error {
		calls++
		return env.errNoRow
	}
	r := Some(1).ToResultElse(supply)
	env.True(r.IsOk())
	env.Equal(0, calls, "error supplier must not run for a present value")
	//
	r = None[int]().ToResultElse(supply)
	env.True(r.IsErr())
	env.Equal(1, calls, "error supplier must run exactly once for None")
	env.Equal(env.errNoRow, r.Err())
}

func (env *ConvertTestEnviron) TestResultToOption() {
	env.Equal(Some(7), Ok(7).ToOption())
	env.Equal(None[int](), Err[int](env.errNoRow).ToOption(),
		"the error is intentionally discarded on conversion")
}

func (env *ConvertTestEnviron) TestRoundTrip() {
	o := Some("alice")
	env.Equal(o, o.ToResult(env.errNoRow).ToOption(),
		"Option -> Result -> Option must be the identity for present values")
	//
	r := Err[string](env.errNoRow)
	env.Equal(None[string](), r.ToOption())
}
