package main

import (
	"os"

	"github.com/dhaval-dalia/personal-diet-tracker-master/config"
	"github.com/dhaval-dalia/personal-diet-tracker-master/routes"
	"github.com/dhaval-dalia/personal-diet-tracker-master/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitMailer()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
