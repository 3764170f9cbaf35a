package ui

import (
	"math"
	"testing"
)

func TestFormatters(t *testing.T) {
	f := NewFormatters(NewTexts())

	tests := []struct {
		name     string
		format   Formatter
		values   []int
		expected string
	}{
		{"last empty", f.Last, nil, "Текущее значение: нет значения"},
		{"last", f.Last, []int{1, 2, 3}, "Текущее значение: 3"},
		{"average empty", f.Average, []int{}, "Среднее: Н/Д"},
		{"average whole", f.Average, []int{2, 4}, "Среднее: 3"},
		{"average fraction", f.Average, []int{1, 2}, "Среднее: 1.5"},
		{"average rounded", f.Average, []int{1, 2, 2}, "Среднее: 1.66667"},
		{"max empty", f.Maximum, nil, "Максимум: Н/Д"},
		{"max", f.Maximum, []int{5, -3, 10}, "Максимум: 10"},
		{"min empty", f.Minimum, nil, "Минимум: Н/Д"},
		{"min", f.Minimum, []int{5, -3, 10}, "Минимум: -3"},
		{"progression empty", f.Progression, nil, "Арифметическая прогрессия: недостаточно данных"},
		{"progression single", f.Progression, []int{5}, "Арифметическая прогрессия: недостаточно данных"},
		{"progression yes", f.Progression, []int{2, 4, 6, 8}, "Арифметическая прогрессия: да (d=2)"},
		{"progression wide step", f.Progression, []int{math.MinInt, math.MaxInt}, "Арифметическая прогрессия: да (d=18446744073709551615)"},
		{"progression no", f.Progression, []int{1, 2, 4}, "Арифметическая прогрессия: нет"},
	}

	for _, test := range tests {
		if result := test.format(test.values); result != test.expected {
			t.Errorf("%s: got %q, expected %q", test.name, result, test.expected)
		}
	}
}

func TestFormatters_For(t *testing.T) {
	f := NewFormatters(NewTexts())
	values := []int{4, 8}

	expected := map[StatKind]string{
		StatLast:        f.Last(values),
		StatAverage:     f.Average(values),
		StatMaximum:     f.Maximum(values),
		StatMinimum:     f.Minimum(values),
		StatProgression: f.Progression(values),
	}
	for kind, want := range expected {
		if got := f.For(kind)(values); got != want {
			t.Errorf("For(%d) = %q, expected %q", kind, got, want)
		}
	}

	if got := f.For(StatKind(99))(values); got != "" {
		t.Errorf("Unknown kind should format to empty text, got %q", got)
	}
}

func TestTexts_UnknownKey(t *testing.T) {
	texts := NewTexts()
	if got := texts.GetText("missing_key"); got != "missing_key" {
		t.Errorf("GetText should fall back to the key, got %q", got)
	}
}
