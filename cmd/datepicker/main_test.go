package main

import (
	"reflect"
	"testing"
)

func TestRewriteDirectParseArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "no args",
			in:   []string{"datepicker"},
			want: []string{"datepicker"},
		},
		{
			name: "date text first token",
			in:   []string{"datepicker", "30.4.2019"},
			want: []string{"datepicker", "parse", "30.4.2019"},
		},
		{
			name: "date text after value flag",
			in:   []string{"datepicker", "--locale", "de", "30.4.2019"},
			want: []string{"datepicker", "--locale", "de", "parse", "30.4.2019"},
		},
		{
			name: "date text after equals flag",
			in:   []string{"datepicker", "--locale=de", "30.4.2019"},
			want: []string{"datepicker", "--locale=de", "parse", "30.4.2019"},
		},
		{
			name: "date text after bool flag",
			in:   []string{"datepicker", "--pretty", "4/30/19"},
			want: []string{"datepicker", "--pretty", "parse", "4/30/19"},
		},
		{
			name: "date text after double dash",
			in:   []string{"datepicker", "--format", "text", "--", "2019-04-30"},
			want: []string{"datepicker", "--format", "text", "--", "parse", "2019-04-30"},
		},
		{
			name: "normal subcommand not rewritten",
			in:   []string{"datepicker", "parse", "30.4.2019"},
			want: []string{"datepicker", "parse", "30.4.2019"},
		},
		{
			name: "month name first is left to cobra",
			in:   []string{"datepicker", "April", "30,", "2019"},
			want: []string{"datepicker", "April", "30,", "2019"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := rewriteDirectParseArgs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}
