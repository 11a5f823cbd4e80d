package routes

import (
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/controllers"
	"github.com/gufronnakaaw/tb-sinar-baja-shop-api/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	r.GET("/", controllers.Welcome)
	r.Static("/public", "./public")

	api := r.Group("/api", middlewares.FullURL())
	{

		// ================= PUBLIC =================
		api.GET("/homepage", controllers.GetHomepage)
		api.GET("/categories", controllers.GetCategories)
		api.GET("/products", controllers.GetProducts)
		api.GET("/products/:slug", controllers.GetProductBySlug)
		api.GET("/provinces", controllers.GetProvinces)
		api.GET("/regencies/:code", controllers.GetRegencies)
		api.GET("/districts/:code", controllers.GetDistricts)

		auth := api.Group("/auth")
		{
			auth.POST("/login/operators", controllers.LoginOperator)
			auth.POST("/register/users", controllers.RegisterUser)
			auth.POST("/login/users", controllers.LoginUser)
		}

		// ================= STOREFRONT (butuh token user) =================
		user := api.Group("/", middlewares.UserAuth())
		{
			carts := user.Group("/carts")
			{
				carts.GET("", controllers.GetCarts)
				carts.POST("", controllers.CreateCart)
				carts.PATCH("", controllers.UpdateCartActive)
				carts.PATCH("/quantity", controllers.UpdateCartQuantity)
				carts.DELETE("/:cart_id", controllers.DeleteCart)
			}

			user.POST("/checkout", controllers.Checkout)

			transactions := user.Group("/transactions")
			{
				transactions.POST("", controllers.CreateTransaction)
				transactions.GET("", controllers.GetTransactions)
				transactions.GET("/detail/:transaksi_id", controllers.GetTransactionDetail)
				transactions.PATCH("/draft", controllers.UpdateTransactionDraft)
				transactions.PATCH("/cancel", controllers.CancelTransaction)
			}

			user.POST("/payments", controllers.SubmitPayment)

			profile := user.Group("/profile")
			{
				profile.GET("", controllers.GetProfile)
				profile.GET("/detail", controllers.GetProfileDetail)
				profile.PATCH("", controllers.UpdateProfile)
				profile.GET("/address", controllers.GetAddresses)
				profile.POST("/address", controllers.CreateAddress)
				profile.PATCH("/address", controllers.UpdateAddress)
				profile.DELETE("/address/:address_id", controllers.DeleteAddress)
			}
		}

		// ================= DASHBOARD (butuh token admin) =================
		dashboard := api.Group("/dashboard", middlewares.AdminAuth())
		{
			dashboard.GET("", controllers.GetDashboard)

			transactions := dashboard.Group("/transactions")
			{
				transactions.GET("", controllers.GetDashboardTransactions)
				transactions.GET("/tabs", controllers.GetDashboardTransactionTabs)
				transactions.GET("/detail/:transaksi_id", controllers.GetDashboardTransactionDetail)
				transactions.PATCH("/cost", controllers.UpdateTransactionCost)
				transactions.PATCH("/verification", controllers.UpdateTransactionVerification)
				transactions.PATCH("/done", controllers.UpdateTransactionDone)
				transactions.PATCH("/cancel", controllers.UpdateTransactionCancel)
			}

			products := dashboard.Group("/products")
			{
				products.GET("", controllers.GetDashboardProducts)
				products.GET("/search", controllers.SearchDashboardProducts)
				products.GET("/:slug", controllers.GetDashboardProductBySlug)
				products.GET("/detail/:kode_item", controllers.GetDashboardProductByKodeItem)
				products.POST("/images", controllers.UploadProductImage)
				products.DELETE("/images/:id", controllers.DeleteProductImage)
				products.PATCH("/active", controllers.UpdateDashboardProductActive)
			}

			dashboard.GET("/categories", controllers.GetDashboardCategories)
			dashboard.PATCH("/categories/active", controllers.UpdateDashboardCategoryActive)

			sync := dashboard.Group("/sync")
			{
				sync.POST("/products", controllers.SyncProducts)
				sync.POST("/products/:id_kategori", controllers.SyncProductsByCategory)
				sync.POST("/categories", controllers.SyncCategories)
				sync.POST("/operators", controllers.SyncOperators)
			}

			banners := dashboard.Group("/banners")
			{
				banners.GET("", controllers.GetBanners)
				banners.POST("", controllers.CreateBanner)
				banners.DELETE("/:id", controllers.DeleteBanner)
			}

			banks := dashboard.Group("/banks")
			{
				banks.GET("", controllers.GetBanks)
				banks.POST("", controllers.CreateBank)
				banks.PATCH("", controllers.UpdateBank)
				banks.DELETE("/:bank_id", controllers.DeleteBank)
			}

			polling := dashboard.Group("/polling")
			{
				polling.GET("", controllers.GetPollings)
				polling.POST("", controllers.CreatePolling)
				polling.PATCH("", controllers.UpdatePolling)
				polling.DELETE("/:id", controllers.DeletePolling)
			}

			operators := dashboard.Group("/operators")
			{
				operators.GET("", controllers.GetOperators)
				operators.DELETE("/:username", controllers.DeleteOperator)
			}

			operationals := dashboard.Group("/operationals")
			{
				operationals.GET("", controllers.GetOperationals)
				operationals.PATCH("", controllers.UpdateOperational)
			}
		}
	}
}
