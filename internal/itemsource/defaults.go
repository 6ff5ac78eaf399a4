package itemsource

import "kanacombo/internal/candidate"

// Fruit returns the demo list used when no item file is given.
func Fruit() []candidate.Item {
	return []candidate.Item{
		{ID: "1", Label: "Apple", Katakana: "アップル"},
		{ID: "2", Label: "Apple", Katakana: "アップル"},
		{ID: "3", Label: "Orange", Katakana: "オレンジ"},
		{ID: "4", Label: "Grape", Katakana: "グレープ"},
		{ID: "5", Label: "Banana", Katakana: "バナナ"},
		{ID: "6", Label: "Peach", Katakana: "ピーチ"},
		{ID: "7", Label: "Lemon", Katakana: "レモン"},
		{ID: "8", Label: "Melon", Katakana: "メロン"},
		{ID: "9", Label: "Strawberry", Katakana: "ストロベリー"},
		{ID: "10", Label: "Pineapple", Katakana: "パイナップル"},
	}
}
