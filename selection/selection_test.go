package selection

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransport records every call and serves canned per-buffer results,
// standing in for a compositor.
type fakeTransport struct {
	primarySupported bool
	primaryCheckErr  error

	regular    []byte // nil = ErrEmpty
	primary    []byte
	pasteErr   map[Kind]error // overrides buffer contents
	copyErr    error
	clearErr   error
	drainErr   error // injected into returned streams
	pasteCalls []Kind
	copyCalls  []Kind
	clearCalls []Kind
	seats      []string
}

func (f *fakeTransport) PrimarySupported() (bool, error) {
	return f.primarySupported, f.primaryCheckErr
}

func (f *fakeTransport) Paste(kind Kind, seat string) (io.ReadCloser, error) {
	f.pasteCalls = append(f.pasteCalls, kind)
	f.seats = append(f.seats, seat)
	if err := f.pasteErr[kind]; err != nil {
		return nil, err
	}
	var data []byte
	switch kind {
	case Primary:
		data = f.primary
	default:
		data = f.regular
	}
	if data == nil {
		return nil, ErrEmpty
	}
	if f.drainErr != nil {
		return io.NopCloser(&failingReader{err: f.drainErr}), nil
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (f *fakeTransport) Copy(kinds Kind, seat string, data []byte) error {
	f.copyCalls = append(f.copyCalls, kinds)
	f.seats = append(f.seats, seat)
	if f.copyErr != nil {
		return f.copyErr
	}
	if kinds.Has(Regular) {
		f.regular = append([]byte(nil), data...)
	}
	if kinds.Has(Primary) {
		f.primary = append([]byte(nil), data...)
	}
	return nil
}

func (f *fakeTransport) Clear(kinds Kind, seat string) error {
	f.clearCalls = append(f.clearCalls, kinds)
	if f.clearErr != nil {
		return f.clearErr
	}
	if kinds.Has(Regular) {
		f.regular = nil
	}
	if kinds.Has(Primary) {
		f.primary = nil
	}
	return nil
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

func TestNewDetectsPrimarySupport(t *testing.T) {
	ctx, err := New(&fakeTransport{primarySupported: true})
	require.NoError(t, err)
	assert.True(t, ctx.SupportsPrimary())

	ctx, err = New(&fakeTransport{primarySupported: false})
	require.NoError(t, err)
	assert.False(t, ctx.SupportsPrimary())
}

func TestNewNoSeatsIsNotFatal(t *testing.T) {
	ctx, err := New(&fakeTransport{primaryCheckErr: ErrNoSeats})
	require.NoError(t, err)
	assert.False(t, ctx.SupportsPrimary())
}

func TestNewPropagatesCheckFailure(t *testing.T) {
	boom := errors.New("compositor does not speak data-control")
	_, err := New(&fakeTransport{primaryCheckErr: boom})
	require.ErrorIs(t, err, boom)
}

func TestRoundTrip(t *testing.T) {
	for _, text := range []string{
		"foo bar baz",
		"trailing newline preserved\n",
		"",
		"mixed — ünïcode 日本語",
	} {
		ft := &fakeTransport{primarySupported: true}
		ctx, err := New(ft)
		require.NoError(t, err)

		require.NoError(t, ctx.SetContents(text))
		got, err := ctx.Contents()
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestContentsEmptyClipboardIsNotAnError(t *testing.T) {
	ctx, err := New(&fakeTransport{primarySupported: false})
	require.NoError(t, err)

	got, err := ctx.Contents()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestContentsSkipsPrimaryWhenUnsupported(t *testing.T) {
	ft := &fakeTransport{primarySupported: false, primary: []byte("stale"), regular: []byte("real")}
	ctx, err := New(ft)
	require.NoError(t, err)

	got, err := ctx.Contents()
	require.NoError(t, err)
	assert.Equal(t, "real", got)
	assert.Equal(t, []Kind{Regular}, ft.pasteCalls)
}

func TestContentsFallsBackOnEmptyPrimary(t *testing.T) {
	for _, emptyErr := range []error{ErrNoSeats, ErrEmpty, ErrNoTextType} {
		ft := &fakeTransport{
			primarySupported: true,
			regular:          []byte("from regular"),
			pasteErr:         map[Kind]error{Primary: emptyErr},
		}
		ctx, err := New(ft)
		require.NoError(t, err)

		got, err := ctx.Contents()
		require.NoError(t, err, "fallback for %v", emptyErr)
		assert.Equal(t, "from regular", got)
		assert.Equal(t, []Kind{Primary, Regular}, ft.pasteCalls)
	}
}

func TestContentsPrimaryTransportErrorDoesNotFallBack(t *testing.T) {
	boom := errors.New("connection reset by compositor")
	ft := &fakeTransport{
		primarySupported: true,
		regular:          []byte("never read"),
		pasteErr:         map[Kind]error{Primary: boom},
	}
	ctx, err := New(ft)
	require.NoError(t, err)

	_, err = ctx.Contents()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []Kind{Primary}, ft.pasteCalls, "regular must not be consulted")
}

func TestContentsBothBuffersEmptyReturnsEmptyString(t *testing.T) {
	ft := &fakeTransport{
		primarySupported: true,
		pasteErr:         map[Kind]error{Primary: ErrEmpty, Regular: ErrNoTextType},
	}
	ctx, err := New(ft)
	require.NoError(t, err)

	got, err := ctx.Contents()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestContentsRegularTransportErrorPropagates(t *testing.T) {
	boom := errors.New("protocol error")
	ft := &fakeTransport{pasteErr: map[Kind]error{Regular: boom}}
	ctx, err := New(ft)
	require.NoError(t, err)

	_, err = ctx.Contents()
	require.ErrorIs(t, err, boom)
}

func TestContentsInvalidUTF8IsFatal(t *testing.T) {
	ft := &fakeTransport{
		primarySupported: true,
		primary:          []byte{0xff, 0xfe, 0xfd},
		regular:          []byte("valid"),
	}
	ctx, err := New(ft)
	require.NoError(t, err)

	_, err = ctx.Contents()
	require.ErrorIs(t, err, ErrNotUTF8)
	assert.Equal(t, []Kind{Primary}, ft.pasteCalls, "decode failure must not trigger fallback")
}

func TestContentsDrainErrorIsFatal(t *testing.T) {
	boom := errors.New("pipe closed mid-transfer")
	ft := &fakeTransport{
		primarySupported: true,
		primary:          []byte("x"),
		drainErr:         boom,
	}
	ctx, err := New(ft)
	require.NoError(t, err)

	_, err = ctx.Contents()
	require.ErrorIs(t, err, boom)
}

func TestSetContentsTargets(t *testing.T) {
	ft := &fakeTransport{primarySupported: true}
	ctx, err := New(ft)
	require.NoError(t, err)
	require.NoError(t, ctx.SetContents("x"))
	require.Equal(t, []Kind{Both}, ft.copyCalls)

	ft = &fakeTransport{primarySupported: false}
	ctx, err = New(ft)
	require.NoError(t, err)
	require.NoError(t, ctx.SetContents("x"))
	require.Equal(t, []Kind{Regular}, ft.copyCalls)
	assert.Nil(t, ft.primary, "primary buffer must stay untouched")
}

func TestSetContentsCopyErrorPropagates(t *testing.T) {
	boom := errors.New("publish rejected")
	ctx, err := New(&fakeTransport{copyErr: boom})
	require.NoError(t, err)
	require.ErrorIs(t, ctx.SetContents("x"), boom)
}

func TestClearScope(t *testing.T) {
	ft := &fakeTransport{primarySupported: true, regular: []byte("a"), primary: []byte("b")}
	ctx, err := New(ft)
	require.NoError(t, err)
	require.NoError(t, ctx.Clear())
	require.Equal(t, []Kind{Both}, ft.clearCalls)

	ft = &fakeTransport{primarySupported: false, regular: []byte("a")}
	ctx, err = New(ft)
	require.NoError(t, err)
	require.NoError(t, ctx.Clear())
	require.Equal(t, []Kind{Regular}, ft.clearCalls)
}

func TestClearErrorPropagates(t *testing.T) {
	boom := errors.New("clear failed")
	ctx, err := New(&fakeTransport{clearErr: boom})
	require.NoError(t, err)
	require.ErrorIs(t, ctx.Clear(), boom)
}

func TestOperationsUseUnspecifiedSeat(t *testing.T) {
	ft := &fakeTransport{primarySupported: true, regular: []byte("x")}
	ctx, err := New(ft)
	require.NoError(t, err)
	_, _ = ctx.Contents()
	_ = ctx.SetContents("y")
	for _, seat := range ft.seats {
		assert.Equal(t, SeatUnspecified, seat)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "regular", Regular.String())
	assert.Equal(t, "primary", Primary.String())
	assert.Equal(t, "regular+primary", Both.String())
}
