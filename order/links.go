package order

import "fmt"

// ManagerDeepLink builds the deep link that opens a chat with the store
// manager pre-filled with the order number. Pure string formatting.
func ManagerDeepLink(base, orderNumber string) string {
	return fmt.Sprintf("%s?start=order_%s", base, orderNumber)
}
