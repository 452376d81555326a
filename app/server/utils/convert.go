package utils

// P 取值的指针，用于构造响应中的可空字段
func P[T any](v T) *T {
	return &v
}
