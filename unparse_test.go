package cargu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderBasic(t *testing.T) {
	s, err := NewBuilder(copyCmd{}).
		Bind("Count", 10).
		Bind("File", "y.pdf").
		BindFlag("Force").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "--count 10 --file y.pdf --force", s)
}

func TestBuilderIdempotent(t *testing.T) {
	b := NewBuilder(copyCmd{}).
		Bind("File", `c:\some dir\`).
		BindFlag("Force")

	first, err := b.Build()
	require.NoError(t, err)
	second, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, first, b.String())
	assert.Equal(t, `--file "c:\some dir\\" --force`, first)

	// building does not consume bindings
	b.Bind("Count", 3)
	third, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, first+" --count 3", third)
}

func TestBuilderTokens(t *testing.T) {
	b := NewBuilder(copyCmd{}).Bind("File", "x y").BindFlag("Force")
	tokens := b.Tokens()
	if diff := cmp.Diff([]string{"--file", "x y", "--force"}, tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	tokens[0] = "changed"
	assert.Equal(t, "--file", b.Tokens()[0])
}

func TestBuilderUsesCanonicalToken(t *testing.T) {
	type Cmd struct {
		File string `cargu:"token=/file,alias=-f"`
	}
	s, err := NewBuilder(Cmd{}).Bind("File", "a").Build()
	require.NoError(t, err)
	assert.Equal(t, "/file a", s)
}

func TestBuilderTuple(t *testing.T) {
	type Cmd struct {
		Point Tuple3[int, float64, string]
		Range [2]uint
	}
	b := NewBuilder(Cmd{}).
		Bind("Point", Tuple3[int, float64, string]{-1, 0.5, "a b"}).
		Bind("Range", [2]uint{3, 4})
	s, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, `--point -1 0.5 "a b" --range 3 4`, s)
}

func TestBuilderNumbers(t *testing.T) {
	type Cmd struct {
		D float64
		F float32
		N int64
	}
	s, err := NewBuilder(Cmd{}).
		Bind("D", 0.1).
		Bind("F", float32(0.1)).
		Bind("D", 1e21).
		Bind("N", int64(-9007199254740993)).
		Build()
	require.NoError(t, err)
	assert.Equal(t, "--d 0.1 --f 0.1 --d 1e+21 --n -9007199254740993", s)
}

func TestBuilderErrors(t *testing.T) {
	type Cmd struct {
		Count int
		Force Flag
		Pair  Tuple2[int, int]
		Wide  [9]int
	}
	cases := []struct {
		name string
		b    func(b *Builder) *Builder
		err  error
	}{
		{"unknown key", func(b *Builder) *Builder { return b.Bind("Nope", 1) }, ErrNotFound},
		{"value for flag", func(b *Builder) *Builder { return b.Bind("Force", true) }, ErrKind},
		{"flag for value", func(b *Builder) *Builder { return b.BindFlag("Count") }, ErrKind},
		{"wrong scalar type", func(b *Builder) *Builder { return b.Bind("Count", "1") }, ErrConversion},
		{"nil scalar", func(b *Builder) *Builder { return b.Bind("Count", nil) }, ErrConversion},
		{"wrong tuple type", func(b *Builder) *Builder { return b.Bind("Pair", [2]int{1, 2}) }, ErrConversion},
		{"unsupported arity", func(b *Builder) *Builder { return b.Bind("Wide", [9]int{}) }, ErrKind},
		{"valid mix", func(b *Builder) *Builder { return b.Bind("Count", 1).Bind("Pair", Tuple2[int, int]{}).BindFlag("Force").Bind("Count", 2) }, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := c.b(NewBuilder(Cmd{}))
			_, err := b.Build()
			if c.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, c.err)
			assert.ErrorIs(t, b.Err(), c.err)
			assert.Equal(t, "", b.String())
		})
	}
}

func TestBuilderStickyError(t *testing.T) {
	b := NewBuilder(copyCmd{}).
		Bind("Count", "not an int").
		Bind("File", "a")
	assert.ErrorIs(t, b.Err(), ErrConversion)
	assert.Empty(t, b.Tokens())
}

func TestBuilderCannotRoundtrip(t *testing.T) {
	b := NewBuilder(copyCmd{}).Bind("File", "a\x00b")
	require.NoError(t, b.Err())
	_, err := b.Build()
	assert.ErrorIs(t, err, ErrCannotRoundtrip)
}

func TestBuilderUnixStyle(t *testing.T) {
	reg := &Registry{Style: StyleUnix}
	_, err := reg.Builder(copyCmd{}).Bind("File", "a").Build()
	assert.ErrorIs(t, err, ErrNotSupported)
}

func TestBuilderNonStructTemplate(t *testing.T) {
	_, err := NewBuilder("nope").Bind("File", "a").Build()
	assert.ErrorIs(t, err, ErrKind)
}

func TestBuildThenParse(t *testing.T) {
	type Cmd struct {
		Count  int    `cargu:"once"`
		File   string `cargu:"mandatory"`
		Force  Flag
		Ratio  float64
		Points Tuple2[string, int]
	}
	files := []string{
		`c:\x.txt`,
		`c:\some dir\`,
		`say "hi"`,
		`\\server\share\`,
		"",
		"--count",
	}

	b := NewBuilder(Cmd{}).Bind("Count", 7)
	for _, f := range files {
		b.Bind("File", f)
	}
	b.BindFlag("Force").
		Bind("Ratio", 0.1).
		Bind("Points", Tuple2[string, int]{`a\"`, -3})

	line, err := b.Build()
	require.NoError(t, err)

	r, err := Parse(Cmd{}, splitWindows(line))
	require.NoError(t, err)

	gotFiles, err := All[string](r, "File")
	require.NoError(t, err)
	if diff := cmp.Diff(files, gotFiles); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	count, err := First[int](r, "Count")
	require.NoError(t, err)
	assert.Equal(t, 7, count)
	ratio, err := First[float64](r, "Ratio")
	require.NoError(t, err)
	assert.Equal(t, 0.1, ratio)
	points, err := First[Tuple2[string, int]](r, "Points")
	require.NoError(t, err)
	assert.Equal(t, Tuple2[string, int]{`a\"`, -3}, points)
	assert.True(t, r.Contains("Force"))
}
