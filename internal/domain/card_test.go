package domain

import "testing"

func TestNewCardValidation(t *testing.T) {
	tests := []struct {
		name    string
		color   Color
		kind    Kind
		value   int
		wantErr bool
	}{
		{name: "RedNumber", color: ColorRed, kind: KindNumber, value: 5},
		{name: "BlueSkip", color: ColorBlue, kind: KindSkip},
		{name: "GreenReverse", color: ColorGreen, kind: KindReverse},
		{name: "YellowDrawTwo", color: ColorYellow, kind: KindDrawTwo},
		{name: "BlackWild", color: ColorBlack, kind: KindWild},
		{name: "BlackDrawFour", color: ColorBlack, kind: KindWildDrawFour},
		{name: "BlackNumber", color: ColorBlack, kind: KindNumber, value: 3, wantErr: true},
		{name: "BlackSkip", color: ColorBlack, kind: KindSkip, wantErr: true},
		{name: "RedWild", color: ColorRed, kind: KindWild, wantErr: true},
		{name: "RedDrawFour", color: ColorRed, kind: KindWildDrawFour, wantErr: true},
		{name: "NumberTooBig", color: ColorRed, kind: KindNumber, value: 10, wantErr: true},
		{name: "NumberNegative", color: ColorRed, kind: KindNumber, value: -1, wantErr: true},
		{name: "UnknownColor", color: Color("purple"), kind: KindNumber, value: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCard(tt.color, tt.kind, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewCard(%v, %v, %d) error = %v, wantErr %v", tt.color, tt.kind, tt.value, err, tt.wantErr)
			}
		})
	}
}

func TestPlayable(t *testing.T) {
	red5 := Card{Color: ColorRed, Kind: KindNumber, Value: 5}

	tests := []struct {
		name      string
		top       Card
		topColor  Color
		candidate Card
		want      bool
	}{
		{
			name:      "SameColor",
			top:       red5,
			candidate: Card{Color: ColorRed, Kind: KindNumber, Value: 3},
			want:      true,
		},
		{
			name:      "SameNumber",
			top:       red5,
			candidate: Card{Color: ColorBlue, Kind: KindNumber, Value: 5},
			want:      true,
		},
		{
			name:      "DifferentColorAndNumber",
			top:       red5,
			candidate: Card{Color: ColorBlue, Kind: KindNumber, Value: 3},
			want:      false,
		},
		{
			name:      "BlackAlwaysPlayable",
			top:       red5,
			candidate: Card{Color: ColorBlack, Kind: KindWild},
			want:      true,
		},
		{
			name:      "SameSpecialKind",
			top:       Card{Color: ColorRed, Kind: KindSkip},
			candidate: Card{Color: ColorBlue, Kind: KindSkip},
			want:      true,
		},
		{
			name:      "SkipOnNumberWrongColor",
			top:       red5,
			candidate: Card{Color: ColorBlue, Kind: KindSkip},
			want:      false,
		},
		{
			name:      "TempColorMatches",
			top:       Card{Color: ColorBlack, Kind: KindWild},
			topColor:  ColorGreen,
			candidate: Card{Color: ColorGreen, Kind: KindNumber, Value: 7},
			want:      true,
		},
		{
			name:      "TempColorBlocksTrueColorlessMatch",
			top:       Card{Color: ColorBlack, Kind: KindWild},
			topColor:  ColorGreen,
			candidate: Card{Color: ColorRed, Kind: KindNumber, Value: 7},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Playable(tt.top, tt.topColor, tt.candidate); got != tt.want {
				t.Errorf("Playable(%v, %v, %v) = %v, want %v", tt.top, tt.topColor, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestCardLabel(t *testing.T) {
	tests := []struct {
		card Card
		want string
	}{
		{Card{Color: ColorRed, Kind: KindNumber, Value: 0}, "0"},
		{Card{Color: ColorRed, Kind: KindNumber, Value: 9}, "9"},
		{Card{Color: ColorBlue, Kind: KindSkip}, "skip"},
		{Card{Color: ColorGreen, Kind: KindReverse}, "reverse"},
		{Card{Color: ColorYellow, Kind: KindDrawTwo}, "+2"},
		{Card{Color: ColorBlack, Kind: KindWild}, "wildcard"},
		{Card{Color: ColorBlack, Kind: KindWildDrawFour}, "+4"},
	}

	for _, tt := range tests {
		if got := tt.card.Label(); got != tt.want {
			t.Errorf("Label(%v) = %q, want %q", tt.card, got, tt.want)
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, s := range []string{"red", "yellow", "green", "blue"} {
		if _, ok := ParseColor(s); !ok {
			t.Errorf("ParseColor(%q) not ok", s)
		}
	}
	for _, s := range []string{"", "black", "purple", "RED"} {
		if _, ok := ParseColor(s); ok {
			t.Errorf("ParseColor(%q) unexpectedly ok", s)
		}
	}
}
