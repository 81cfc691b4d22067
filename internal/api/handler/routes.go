package handler

import (
	"net/http"

	"github.com/vfg2006/storefront-api/internal/api/handler/router"
	"github.com/vfg2006/storefront-api/internal/usecases/authenticating"
	"github.com/vfg2006/storefront-api/internal/usecases/catalog"
	"github.com/vfg2006/storefront-api/internal/usecases/checkout"
	"github.com/vfg2006/storefront-api/internal/usecases/ranking"
	"github.com/vfg2006/storefront-api/internal/usecases/reporting"
	"github.com/vfg2006/storefront-api/internal/usecases/reviewing"
	"github.com/vfg2006/storefront-api/internal/usecases/settling"
	"github.com/vfg2006/storefront-api/internal/usecases/storefront"
	"github.com/vfg2006/storefront-api/internal/usecases/subscribing"
	"github.com/vfg2006/storefront-api/pkg/middleware"
)

type middlewares = []func(http.Handler) http.Handler

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Storefronts(service storefront.Storefronter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/storefronts",
			Method:      http.MethodPost,
			Handler:     CreateTenant(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:    "/v1/storefronts/:slug",
			Method:  http.MethodGet,
			Handler: GetPublicTenant(service),
		},
		{
			Path:        "/v1/storefronts/:slug/manage",
			Method:      http.MethodGet,
			Handler:     GetManagedTenant(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:        "/v1/storefronts/:slug/bank-details",
			Method:      http.MethodPost,
			Handler:     SubmitBankDetails(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:        "/v1/me/storefronts",
			Method:      http.MethodGet,
			Handler:     ListMyTenants(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
	}
}

func Catalog(service catalog.Cataloger) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/storefronts/:slug/categories",
			Method:  http.MethodGet,
			Handler: ListCategories(service),
		},
		{
			Path:        "/v1/storefronts/:slug/categories",
			Method:      http.MethodPost,
			Handler:     CreateCategory(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:    "/v1/storefronts/:slug/products",
			Method:  http.MethodGet,
			Handler: ListProducts(service),
		},
		{
			Path:        "/v1/storefronts/:slug/products",
			Method:      http.MethodPost,
			Handler:     CreateProduct(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:    "/v1/storefronts/:slug/products/:product_id",
			Method:  http.MethodGet,
			Handler: GetProduct(service),
		},
	}
}

func Reviews(service reviewing.Reviewer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/storefronts/:slug/products/:product_id/reviews",
			Method:  http.MethodGet,
			Handler: ListReviews(service),
		},
		{
			Path:        "/v1/storefronts/:slug/products/:product_id/reviews",
			Method:      http.MethodPost,
			Handler:     CreateReview(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

func Checkout(service checkout.Checkouter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/storefronts/:slug/orders",
			Method:      http.MethodPost,
			Handler:     PlaceOrder(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/storefronts/:slug/orders/:order_id",
			Method:      http.MethodGet,
			Handler:     GetOrder(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/orders",
			Method:      http.MethodGet,
			Handler:     ListMyOrders(service),
			Middlewares: middlewares{middleware.AllRoles()},
		},
	}
}

// Settlement é chamada pelo gateway de pagamento, sem token. A assinatura HMAC autentica a requisição.
func Settlement(service settling.Settler) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/storefronts/:slug/payments/verify",
			Method:  http.MethodPost,
			Handler: VerifyPayment(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/storefronts/:slug/reports/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlySummary(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:        "/v1/storefronts/:slug/reports/periods",
			Method:      http.MethodGet,
			Handler:     GetReportPeriods(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:        "/v1/storefronts/:slug/reports/categories",
			Method:      http.MethodGet,
			Handler:     ListCategorySales(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
		{
			Path:        "/v1/storefronts/:slug/reports/top-products",
			Method:      http.MethodGet,
			Handler:     ListTopProducts(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
	}
}

func Subscriptions(service subscribing.Subscriber) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/plans",
			Method:  http.MethodGet,
			Handler: ListPlans(service),
		},
		{
			Path:        "/v1/storefronts/:slug/subscription",
			Method:      http.MethodPost,
			Handler:     Subscribe(service),
			Middlewares: middlewares{middleware.SellerOrAdmin()},
		},
	}
}

func StoreRanking(service ranking.RankingService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/stores/ranking",
			Method:      http.MethodGet,
			Handler:     GetStoreRanking(service),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: middlewares{middleware.AdminOnly()},
		},
	}
}
