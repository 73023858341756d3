package tasks

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/desertthunder/spotid/internal/models"
	"github.com/desertthunder/spotid/internal/shared"
	"github.com/desertthunder/spotid/internal/spotifyid"
	th "github.com/desertthunder/spotid/internal/testing"
)

const (
	trackURI    = "spotify:track:5sWHDYs0csV6RS48xBl0tH"
	trackBase62 = "5sWHDYs0csV6RS48xBl0tH"
	trackBase16 = "b39fe8081e1f4c54be38e8d6f9f12bb9"
	episodeURI  = "spotify:episode:4GNcXTGWmnZ3ySrqvol3o4"
)

func newTestConverter(kind models.InputKind) *Converter {
	return NewConverter(kind, shared.NewLogger(io.Discard))
}

func TestConverter(t *testing.T) {
	t.Run("Decode", func(t *testing.T) {
		tt := []struct {
			name    string
			kind    models.InputKind
			input   string
			want    string
			wantErr error
		}{
			{name: "auto uri", kind: models.KindAuto, input: trackURI, want: trackBase16},
			{name: "auto base62", kind: models.KindAuto, input: trackBase62, want: trackBase16},
			{name: "auto base16", kind: models.KindAuto, input: trackBase16, want: trackBase16},
			{name: "auto trims whitespace", kind: models.KindAuto, input: "  " + trackBase62 + "\t", want: trackBase16},
			{name: "auto bad length", kind: models.KindAuto, input: "abc", wantErr: spotifyid.ErrInvalidLength},
			{name: "base62", kind: models.KindBase62, input: trackBase62, want: trackBase16},
			{name: "base62 bad digit", kind: models.KindBase62, input: "5sWHDYs0csV6RS48xBl0t_", wantErr: spotifyid.ErrInvalidDigit},
			{name: "base16", kind: models.KindBase16, input: trackBase16, want: trackBase16},
			{name: "uri", kind: models.KindURI, input: trackURI, want: trackBase16},
			{name: "uri too short", kind: models.KindURI, input: "spotify:track", wantErr: spotifyid.ErrInvalidReference},
			{name: "raw", kind: models.KindRaw, input: trackBase16, want: trackBase16},
			{name: "raw spaced", kind: models.KindRaw, input: "b3 9f e8 08 1e 1f 4c 54 be 38 e8 d6 f9 f1 2b b9", want: trackBase16},
			{name: "raw bad hex", kind: models.KindRaw, input: "zz", wantErr: spotifyid.ErrInvalidDigit},
			{name: "raw wrong length", kind: models.KindRaw, input: "b39f", wantErr: spotifyid.ErrInvalidLength},
			{name: "unknown kind", kind: models.InputKind(99), input: trackBase62, wantErr: shared.ErrInvalidArgument},
		}

		for _, tc := range tt {
			t.Run(tc.name, func(t *testing.T) {
				id, err := newTestConverter(tc.kind).Decode(tc.input)
				if tc.wantErr != nil {
					if !errors.Is(err, tc.wantErr) {
						t.Fatalf("Decode() error = %v, want %v", err, tc.wantErr)
					}
					return
				}
				if err != nil {
					t.Fatalf("Decode() error = %v", err)
				}
				if got := id.ToBase16(); got != tc.want {
					t.Errorf("Decode() = %s, want %s", got, tc.want)
				}
			})
		}
	})

	t.Run("Convert renders every form", func(t *testing.T) {
		got := newTestConverter(models.KindAuto).Convert(episodeURI)

		want := models.Conversion{
			Input:    episodeURI,
			Kind:     "auto",
			Category: "podcast",
			Base62:   "4GNcXTGWmnZ3ySrqvol3o4",
			Base16:   "9a1b1cfbc6f244569ae0356c77bbe9d8",
			Raw:      "9a 1b 1c fb c6 f2 44 56 9a e0 35 6c 77 bb e9 d8",
			URI:      episodeURI,
			UUID:     "9a1b1cfb-c6f2-4456-9ae0-356c77bbe9d8",
		}
		if got != want {
			t.Errorf("Convert() = %+v, want %+v", got, want)
		}
	})

	t.Run("Raw output decodes as raw input", func(t *testing.T) {
		first := newTestConverter(models.KindAuto).Convert(episodeURI)
		again := newTestConverter(models.KindRaw).Convert(first.Raw)
		if !again.OK() {
			t.Fatalf("Convert(%q) failed: %s", first.Raw, again.Err)
		}
		if again.Base62 != first.Base62 {
			t.Errorf("Base62 = %s, want %s", again.Base62, first.Base62)
		}
	})

	t.Run("Convert records errors", func(t *testing.T) {
		got := newTestConverter(models.KindBase16).Convert("xyz")
		if got.OK() {
			t.Fatal("expected conversion to fail")
		}
		if !strings.Contains(got.Err, "invalid digit") {
			t.Errorf("Err = %q, want invalid digit", got.Err)
		}
		if got.Base62 != "" || got.URI != "" {
			t.Errorf("failed conversion should not carry renderings: %+v", got)
		}
	})

	t.Run("ConvertAll keeps order and continues past failures", func(t *testing.T) {
		set := newTestConverter(models.KindAuto).ConvertAll("args", []string{trackURI, "bogus", episodeURI})

		if set.Source != "args" {
			t.Errorf("Source = %s", set.Source)
		}
		if len(set.Items) != 3 {
			t.Fatalf("expected 3 items, got %d", len(set.Items))
		}
		if set.Items[0].Input != trackURI || set.Items[2].Input != episodeURI {
			t.Errorf("items out of order: %+v", set.Items)
		}
		if set.Valid() != 2 || set.Failed() != 1 {
			t.Errorf("Valid() = %d, Failed() = %d", set.Valid(), set.Failed())
		}
	})
}

func TestConvertReader(t *testing.T) {
	input := strings.Join([]string{
		"# exported ids",
		trackURI,
		"",
		"   ",
		trackBase16,
		"not-an-id",
		episodeURI,
	}, "\n")

	t.Run("skips blanks and comments", func(t *testing.T) {
		set, err := newTestConverter(models.KindAuto).ConvertReader(context.Background(), "ids.txt", strings.NewReader(input), nil)
		if err != nil {
			t.Fatalf("ConvertReader() error = %v", err)
		}
		if len(set.Items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(set.Items))
		}
		if set.Valid() != 3 {
			t.Errorf("Valid() = %d, want 3", set.Valid())
		}
		if set.Items[2].OK() {
			t.Errorf("expected %q to fail", set.Items[2].Input)
		}
	})

	t.Run("reports progress", func(t *testing.T) {
		progress := make(chan ProgressUpdate, 16)
		_, err := newTestConverter(models.KindAuto).ConvertReader(context.Background(), "ids.txt", strings.NewReader(input), progress)
		if err != nil {
			t.Fatalf("ConvertReader() error = %v", err)
		}
		close(progress)

		var phases []Phase
		for update := range progress {
			phases = append(phases, update.Phase)
		}

		want := []Phase{ReadInput, DecodeInput, DecodeInput, DecodeInput, DecodeInput, Complete}
		if len(phases) != len(want) {
			t.Fatalf("got %d updates, want %d: %v", len(phases), len(want), phases)
		}
		for i := range want {
			if phases[i] != want[i] {
				t.Errorf("update %d phase = %v, want %v", i, phases[i], want[i])
			}
		}
	})

	t.Run("full channel does not block", func(t *testing.T) {
		progress := make(chan ProgressUpdate)
		set, err := newTestConverter(models.KindAuto).ConvertReader(context.Background(), "ids.txt", strings.NewReader(input), progress)
		if err != nil {
			t.Fatalf("ConvertReader() error = %v", err)
		}
		if len(set.Items) != 4 {
			t.Errorf("expected 4 items, got %d", len(set.Items))
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		set, err := newTestConverter(models.KindAuto).ConvertReader(ctx, "ids.txt", strings.NewReader(input), nil)
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
		if len(set.Items) != 0 {
			t.Errorf("expected no items after cancellation, got %d", len(set.Items))
		}
	})

	t.Run("reader error", func(t *testing.T) {
		_, err := newTestConverter(models.KindAuto).ConvertReader(context.Background(), "broken", &th.FReader{}, nil)
		if err == nil || !strings.Contains(err.Error(), "failed to read broken") {
			t.Errorf("expected read error, got %v", err)
		}
	})
}

func TestPhase(t *testing.T) {
	for phase, want := range map[Phase]string{
		ReadInput:   "read_input",
		DecodeInput: "decode_input",
		Complete:    "complete",
		Phase(42):   "",
	} {
		if got := phase.String(); got != want {
			t.Errorf("Phase(%d).String() = %q, want %q", int(phase), got, want)
		}
	}
}
