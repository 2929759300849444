package dto

type CreateCustomerInput struct {
	Name         string `json:"name" binding:"required"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address" binding:"required"`
	Contact      string `json:"contact" binding:"required"`
	Route        string `json:"route"`
}

type UpdateCustomerInput struct {
	ID           string `json:"-"`
	Name         string `json:"name"`
	BusinessName string `json:"business_name"`
	Address      string `json:"address"`
	Contact      string `json:"contact"`
	Route        string `json:"route"`
}
