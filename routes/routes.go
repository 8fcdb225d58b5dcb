package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/joshegilbert/nutriz/controllers"
	"github.com/joshegilbert/nutriz/middlewares"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}
	auth.GET("/me", middlewares.AuthMiddleware(), controllers.Me)

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		clients := api.Group("/clients")
		{
			clients.POST("", controllers.CreateClient)
			clients.GET("", controllers.ListClients)
			clients.GET("/:id", controllers.GetClient)
			clients.PUT("/:id", controllers.UpdateClient)
			clients.DELETE("/:id", controllers.DeleteClient)
		}

		foods := api.Group("/fooditems")
		{
			foods.POST("", controllers.CreateFoodItem)
			foods.GET("", controllers.ListFoodItems)
			foods.GET("/:id", controllers.GetFoodItem)
			foods.PUT("/:id", controllers.UpdateFoodItem)
			foods.DELETE("/:id", controllers.DeleteFoodItem)
		}

		recipes := api.Group("/recipes")
		{
			recipes.POST("", controllers.CreateRecipe)
			recipes.GET("", controllers.ListRecipes)
			recipes.GET("/:id", controllers.GetRecipe)
			recipes.PUT("/:id", controllers.UpdateRecipe)
			recipes.DELETE("/:id", controllers.DeleteRecipe)
		}

		meals := api.Group("/meals")
		{
			meals.POST("", controllers.CreateMeal)
			meals.GET("", controllers.ListMeals)
			meals.GET("/:id", controllers.GetMeal)
			meals.PUT("/:id", controllers.UpdateMeal)
			meals.DELETE("/:id", controllers.DeleteMeal)
		}

		mealTemplates := api.Group("/meal-templates")
		{
			mealTemplates.POST("", controllers.CreateMealTemplate)
			mealTemplates.GET("", controllers.ListMealTemplates)
			mealTemplates.PUT("/:id", controllers.UpdateMealTemplate)
			mealTemplates.DELETE("/:id", controllers.DeleteMealTemplate)
		}

		templates := api.Group("/templates")
		{
			templates.POST("", controllers.CreateTemplate)
			templates.GET("", controllers.ListTemplates)
			templates.PUT("/:id", controllers.UpdateTemplate)
			templates.DELETE("/:id", controllers.DeleteTemplate)
		}

		programs := api.Group("/programs")
		{
			programs.POST("", controllers.CreateProgram)
			programs.GET("", controllers.ListPrograms)
			programs.GET("/:id", controllers.GetProgram)
			programs.PUT("/:id", controllers.UpdateProgram)
			programs.DELETE("/:id", controllers.DeleteProgram)

			programs.POST("/:id/days", controllers.AddProgramDay)
			programs.PATCH("/:id/days/:dayId", controllers.UpdateProgramDay)
			programs.DELETE("/:id/days/:dayId", controllers.DeleteProgramDay)
			programs.PUT("/:id/days/:dayId/variant", controllers.SetProgramDayVariant)

			programs.POST("/:id/days/:dayId/meals", controllers.AddMealToDay)
			programs.PATCH("/:id/days/:dayId/meals/:mealId", controllers.UpdateMealInDay)
			programs.DELETE("/:id/days/:dayId/meals/:mealId", controllers.DeleteMealFromDay)

			programs.POST("/:id/days/:dayId/meals/:mealId/items", controllers.AddItemToMeal)
			programs.PATCH("/:id/days/:dayId/meals/:mealId/items/:itemId", controllers.UpdateItemInMeal)
			programs.DELETE("/:id/days/:dayId/meals/:mealId/items/:itemId", controllers.DeleteItemFromMeal)
		}
	}

	return r
}
