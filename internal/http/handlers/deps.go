package handlers

import (
	"github.com/jmoiron/sqlx"

	"github.com/modasserjasim/computer-cell-bazar-server/internal/config"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/repos"
	"github.com/modasserjasim/computer-cell-bazar-server/internal/services"
)

type Deps struct {
	Auth            *services.AuthService
	AuthHandler     *AuthHandler
	UserHandler     *UserHandler
	CategoryHandler *CategoryHandler
	ProductHandler  *ProductHandler
	BookingHandler  *BookingHandler
	PaymentHandler  *PaymentHandler
}

func NewDeps(db *sqlx.DB, cfg config.Config, gw services.IntentGateway) *Deps {
	userRepo := repos.NewUserRepo(db)
	catRepo := repos.NewCategoryRepo(db)
	prodRepo := repos.NewProductRepo(db)
	bookRepo := repos.NewBookingRepo(db)
	payRepo := repos.NewPaymentRepo(db)

	authSvc := services.NewAuthService(userRepo, []byte(cfg.TokenSecret), cfg.TokenTTLDays)
	accountSvc := services.NewAccountService(userRepo)
	catalogSvc := services.NewCatalogService(catRepo, prodRepo)
	bookingSvc := services.NewBookingService(bookRepo)
	paymentSvc := services.NewPaymentService(bookRepo, payRepo, gw)

	return &Deps{
		Auth:            authSvc,
		AuthHandler:     &AuthHandler{Auth: authSvc},
		UserHandler:     &UserHandler{Accounts: accountSvc},
		CategoryHandler: &CategoryHandler{Catalog: catalogSvc},
		ProductHandler:  &ProductHandler{Catalog: catalogSvc, Auth: authSvc},
		BookingHandler:  &BookingHandler{Bookings: bookingSvc, Auth: authSvc},
		PaymentHandler:  &PaymentHandler{Payments: paymentSvc},
	}
}
