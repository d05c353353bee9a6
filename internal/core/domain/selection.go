package domain

import "strings"

// IsFlagSet - значение чекбокса считается выставленным, если оно непустое
// и не похоже на явное "нет".
func IsFlagSet(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "0", "false", "off", "no":
		return false
	default:
		return true
	}
}

// SelectFlagged возвращает элементы universe, для которых в flags выставлен флаг.
// Обходим именно universe, поэтому ключи вне него в ответ не попадают.
func SelectFlagged(universe []string, flags map[string]string) []string {
	selected := make([]string, 0, len(flags))
	for _, value := range universe {
		if flag, ok := flags[value]; ok && IsFlagSet(flag) {
			selected = append(selected, value)
		}
	}
	return selected
}
