package wtprintevent

func plural[T ~int | ~int64](value T, singular, plural string) string {
	if value == 1 {
		return singular
	}
	return plural
}
