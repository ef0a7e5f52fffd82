package codec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/duocodec/duocodec/wire"
)

type person struct {
	ID   uint32
	Name []byte
}

func personRecord(p *person) *Record {
	r, err := NewRecord(true,
		Field("id", Primitive[uint32]{}, &p.ID),
		Field("name", ByteString{}, &p.Name),
	)
	if err != nil {
		panic(err)
	}

	return r
}

func encodeRecord(t *testing.T, d Dialect, r *Record) []byte {
	t.Helper()

	buf := wire.NewBuffer(64)
	_, err := r.Encode(d, buf, 0, 0)
	require.NoError(t, err)

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out
}

func TestRecordRoundTripStaticAndDynamicField(t *testing.T) {
	for _, d := range []Dialect{Solidity, Compact} {
		p := person{ID: 7, Name: []byte("ada")}
		r := personRecord(&p)

		got := encodeRecord(t, d, r)

		var out person
		outRecord := personRecord(&out)

		view := wire.NewView(got)
		require.NoError(t, outRecord.Decode(d, view, 0, 0))

		require.Equal(t, p.ID, out.ID)
		require.Equal(t, p.Name, out.Name)
	}
}

func TestRecordIsDynamicOnlyUnderSolidityWithDynamicField(t *testing.T) {
	p := person{}
	r := personRecord(&p)

	require.True(t, r.IsDynamic(Solidity))
	require.False(t, r.IsDynamic(Compact))
}

func TestRecordSolidityHeaderIsOffsetWordWhenDynamic(t *testing.T) {
	p := person{ID: 1, Name: []byte("x")}
	r := personRecord(&p)

	require.Equal(t, 32, r.HeaderSize(Solidity))
}

func TestRecordDecodeOverwritesBoundFields(t *testing.T) {
	p := person{ID: 42, Name: []byte("before")}
	r := personRecord(&p)
	got := encodeRecord(t, Compact, r)

	out := person{ID: 999, Name: []byte("stale")}
	outRecord := personRecord(&out)

	view := wire.NewView(got)
	require.NoError(t, outRecord.Decode(Compact, view, 0, 0))

	require.Equal(t, uint32(42), out.ID)
	require.Equal(t, []byte("before"), out.Name)
}

func TestNewRecordAllowsRepeatedIdenticalFieldName(t *testing.T) {
	var a, b uint32
	_, err := NewRecord(true,
		Field("x", Primitive[uint32]{}, &a),
		Field("x", Primitive[uint32]{}, &b),
	)
	require.NoError(t, err)
}

func TestNewRecordAcceptsDistinctNamesWithCheckDisabled(t *testing.T) {
	var a, b uint32
	_, err := NewRecord(false,
		Field("x", Primitive[uint32]{}, &a),
		Field("y", Primitive[uint32]{}, &b),
	)
	require.NoError(t, err)
}
