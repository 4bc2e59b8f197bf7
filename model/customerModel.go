// model/customer.go
package model

type Customer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	IsGold bool   `json:"isGold"`
	Phone  string `json:"phone"`
}
