package models

import "fmt"

type Health struct {
	Healthy bool `json:"healthy"`
}

type User struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type Product struct {
	Id          int     `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       int     `json:"price"`
	Stock       int     `json:"stock"`
	CategoryId  int     `json:"categoryId"`
	AnimalType  string  `json:"animalType"`
	IsActive    bool    `json:"isActive"`
	Images      []Image `json:"images,omitempty"`
}

// DisplayPrice converts the integer minor-unit price for display.
func (p Product) DisplayPrice() float64 {
	return float64(p.Price) / 100
}

type Image struct {
	Id        int    `json:"id"`
	ProductId int    `json:"productId"`
	URL       string `json:"url"`
}

type Category struct {
	Id          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Favorite carries a denormalized copy of the product it points at.
type Favorite struct {
	Id        int    `json:"id"`
	UserId    int    `json:"userId"`
	ProductId int    `json:"productId"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
	Image     string `json:"image"`
}

type ShoppingCart struct {
	Id       int           `json:"id"`
	UserId   *int          `json:"userId"`
	Products []CartProduct `json:"products"`
}

// IsGuest reports whether the cart belongs to no user.
func (c ShoppingCart) IsGuest() bool {
	return c.UserId == nil
}

// Total is the sum of line prices in minor units.
func (c ShoppingCart) Total() int {
	total := 0
	for _, p := range c.Products {
		total += p.Price * p.Quantity
	}
	return total
}

type CartProduct struct {
	ProductId     int    `json:"productId"`
	CartProductId int    `json:"cartProductId"`
	Quantity      int    `json:"quantity"`
	Title         string `json:"title,omitempty"`
	Price         int    `json:"price,omitempty"`
	Image         string `json:"image,omitempty"`
}

type Order struct {
	Id         int           `json:"id"`
	UserId     int           `json:"userId"`
	Products   []CartProduct `json:"products"`
	PaymentRef string        `json:"paymentRef"`
}

type CheckoutSession struct {
	Id  string `json:"id"`
	URL string `json:"url"`
}

type AuthResult struct {
	Token   string `json:"token"`
	User    User   `json:"user"`
	Message string `json:"message,omitempty"`
}

// FormatPrice renders minor units as dollars, e.g. 1999 -> "$19.99".
func FormatPrice(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s$%d.%02d", sign, cents/100, cents%100)
}
