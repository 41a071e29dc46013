package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/DavidBallares/proyecto-gag/app/config"
	"github.com/DavidBallares/proyecto-gag/app/database"
	"github.com/DavidBallares/proyecto-gag/app/models"
	"github.com/DavidBallares/proyecto-gag/app/routes/auth"
)

func main() {
	email := flag.String("email", "", "email address for the new account")
	name := flag.String("name", "", "display name")
	password := flag.String("password", "", "initial password")
	admin := flag.Bool("admin", false, "grant administrator role")
	flag.Parse()

	if *email == "" || *name == "" || *password == "" {
		fmt.Println("Usage: add_user -email <email> -name <name> -password <password> [-admin]")
		os.Exit(1)
	}

	config.Init()
	db := config.GetDB()
	defer db.Close()

	hashed, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Error hashing password: %v\n", err)
		os.Exit(1)
	}

	roleID := models.RoleUser
	if *admin {
		roleID = models.RoleAdmin
	}

	user := &models.User{
		Email:    *email,
		Password: hashed,
		Name:     *name,
		RoleID:   roleID,
	}
	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s (%s)\n", user.Name, user.Email)
}
