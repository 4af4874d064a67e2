package controller

import "fmt"

// parsePageParam parsea parámetros numéricos de paginación
func parsePageParam(s string) (int, error) {
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil {
		return 0, err
	}
	return n, nil
}
