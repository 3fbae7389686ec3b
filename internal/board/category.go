package board

// Category is one of the fixed task categories offered by the board.
type Category string

const (
	CategoryKerja   Category = "Kerja"
	CategoryRumah   Category = "Rumah"
	CategoryWajib   Category = "Wajib"
	CategoryAcara   Category = "Acara"
	CategorySekolah Category = "Sekolah"
)

// Categories returns the categories in display order.
func Categories() []Category {
	return []Category{CategoryKerja, CategoryRumah, CategoryWajib, CategoryAcara, CategorySekolah}
}

func (c Category) Valid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

func containsCategory(list []Category, c Category) bool {
	for _, it := range list {
		if it == c {
			return true
		}
	}
	return false
}
