package models

// Request parameters, one struct per adapter operation. Token is optional
// wherever an endpoint serves both guests and signed-in users.

type ProductParams struct {
	ProductId int `validate:"required,gt=0"`
}

type ProductInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       int    `json:"price" validate:"gte=0"`
	Stock       int    `json:"stock" validate:"gte=0"`
	CategoryId  int    `json:"categoryId" validate:"gt=0"`
	AnimalType  string `json:"animalType,omitempty"`
}

type CreateProductParams struct {
	Token   string `validate:"required"`
	Product ProductInput
}

type UpdateProductParams struct {
	Token     string `validate:"required"`
	ProductId int    `validate:"required,gt=0"`
	Fields    ProductPatch
}

// ProductPatch sends only the fields that are set.
type ProductPatch struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int    `json:"price,omitempty" validate:"omitempty,gte=0"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	CategoryId  *int    `json:"categoryId,omitempty" validate:"omitempty,gt=0"`
	AnimalType  *string `json:"animalType,omitempty"`
}

type DeactivateProductParams struct {
	Token     string `validate:"required"`
	ProductId int    `validate:"required,gt=0"`
}

type AttachImageParams struct {
	Token     string `validate:"required"`
	ProductId int    `validate:"required,gt=0"`
	URL       string `validate:"required,url"`
}

type CreateCategoryParams struct {
	Token       string `validate:"required"`
	Name        string `validate:"required"`
	Description string
}

type UpdateCategoryParams struct {
	Token      string `validate:"required"`
	CategoryId int    `validate:"required,gt=0"`
	Fields     CategoryPatch
}

type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type DeleteCategoryParams struct {
	Token      string `validate:"required"`
	CategoryId int    `validate:"required,gt=0"`
}

type RegisterParams struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

type LoginParams struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type TokenParams struct {
	Token string `validate:"required"`
}

type UserParams struct {
	Token  string `validate:"required"`
	UserId int    `validate:"required,gt=0"`
}

type UpdateRoleParams struct {
	Token   string `validate:"required"`
	UserId  int    `validate:"required,gt=0"`
	IsAdmin bool
}

type FavoritesParams struct {
	Token  string `validate:"required"`
	UserId int    `validate:"required,gt=0"`
}

type AddFavoriteParams struct {
	Token     string `validate:"required"`
	UserId    int    `validate:"required,gt=0"`
	ProductId int    `validate:"required,gt=0"`
}

type RemoveFavoriteParams struct {
	Token      string `validate:"required"`
	FavoriteId int    `validate:"required,gt=0"`
}

type CartParams struct {
	Token      string
	ShoppingId int `validate:"required,gt=0"`
}

type AddToCartParams struct {
	Token      string
	ShoppingId int `validate:"required,gt=0"`
	ProductId  int `validate:"required,gt=0"`
	Quantity   int `validate:"required,gt=0"`
}

type RemoveFromCartParams struct {
	Token         string
	CartProductId int `validate:"required,gt=0"`
}

type UpdateQuantityParams struct {
	Token         string
	ShoppingId    int `validate:"required,gt=0"`
	CartProductId int `validate:"required,gt=0"`
	Quantity      int `validate:"required,gt=0"`
}

type CheckoutParams struct {
	Token      string
	ShoppingId int           `validate:"required,gt=0"`
	Products   []CartProduct `validate:"required,min=1"`
}

type OrdersParams struct {
	Token  string `validate:"required"`
	UserId int    `validate:"required,gt=0"`
}
