package ptr

// Ptr возвращает указатель на значение
func Ptr[T any](v T) *T {
	return &v
}

// Value разыменовывает указатель или возвращает значение по умолчанию
func Value[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
