package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type aggregate struct {
	Name    string            `json:"name" toml:"name" yaml:"name"`
	Weights map[string]int    `json:"weights" toml:"weights" yaml:"weights"`
	Tags    []string          `json:"tags" toml:"tags" yaml:"tags"`
	When    time.Time         `json:"when" toml:"when" yaml:"when"`
	Extra   map[string]string `json:"extra,omitempty" toml:"extra,omitempty" yaml:"extra,omitempty"`
}

type entry struct {
	Title string `json:"title" toml:"title" yaml:"title"`
	Count int    `json:"count" toml:"count" yaml:"count"`
}

func TestPutGet_HeterogeneousPayloads(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, name := range Codecs() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			codec, err := CodecByName(name)
			if err != nil {
				t.Fatalf("CodecByName(%q): %v", name, err)
			}
			s := NewMemoryStore()

			agg := aggregate{
				Name:    "defaults",
				Weights: map[string]int{"bomb": 1, "star": 3},
				Tags:    []string{"a", "b"},
				When:    savedAt,
			}
			catalog := map[string]entry{
				"Level 1":   {Title: "Level 1", Count: 4},
				"boss room": {Title: "boss room", Count: 12},
			}

			if err := Put(ctx, s, codec, KeyPresets, agg); err != nil {
				t.Fatalf("Put aggregate: %v", err)
			}
			if err := Put(ctx, s, codec, KeyCustomLevels, catalog); err != nil {
				t.Fatalf("Put catalog: %v", err)
			}

			gotAgg, ok, err := Get[aggregate](ctx, s, codec, KeyPresets)
			if err != nil || !ok {
				t.Fatalf("Get aggregate = %v, %v", ok, err)
			}
			if diff := cmp.Diff(agg, gotAgg); diff != "" {
				t.Errorf("aggregate mismatch (-want +got):\n%s", diff)
			}

			gotCatalog, ok, err := Get[map[string]entry](ctx, s, codec, KeyCustomLevels)
			if err != nil || !ok {
				t.Fatalf("Get catalog = %v, %v", ok, err)
			}
			if diff := cmp.Diff(catalog, gotCatalog); diff != "" {
				t.Errorf("catalog mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGet_Absent(t *testing.T) {
	t.Parallel()
	got, ok, err := Get[map[string]entry](context.Background(), NewMemoryStore(), JSON(), KeyPresetLevels)
	if err != nil || ok || got != nil {
		t.Errorf("Get = %v, %v, %v; want nil, false, nil", got, ok, err)
	}
}

func TestGet_CorruptPayload(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := NewMemoryStore()
	if err := s.Write(ctx, KeyPresets, []byte("{not json")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	_, ok, err := Get[aggregate](ctx, s, JSON(), KeyPresets)
	if ok {
		t.Error("Get reported ok for a corrupt payload")
	}
	if !errors.Is(err, ErrCorrupt) {
		t.Errorf("Get error = %v, want ErrCorrupt", err)
	}
}

func TestCodecByName(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "json", false},
		{"json", "json", false},
		{"toml", "toml", false},
		{"yml", "yaml", false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		c, err := CodecByName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("CodecByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if err != nil {
			if !errors.Is(err, ErrUnknownCodec) {
				t.Errorf("CodecByName(%q) error does not wrap ErrUnknownCodec", tt.name)
			}
			continue
		}
		if c.Name() != tt.want || c.Ext() != tt.want {
			t.Errorf("CodecByName(%q) = %s/%s, want %s", tt.name, c.Name(), c.Ext(), tt.want)
		}
	}
}
