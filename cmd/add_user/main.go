package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dclocky/SchoolPulse/app/config"
	"github.com/dclocky/SchoolPulse/app/models"
	"github.com/dclocky/SchoolPulse/app/routes/auth"
	"github.com/dclocky/SchoolPulse/app/storage/postgres"
)

func main() {
	username := flag.String("username", "admin", "login username")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "initial password")
	firstName := flag.String("first", "School", "first name")
	lastName := flag.String("last", "Admin", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		fmt.Println("Usage: add_user -email admin@school.edu -password secret [-username admin]")
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := config.OpenDB(cfg)
	if err != nil {
		fmt.Printf("Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	store := postgres.New(db)
	if err := store.Bootstrap(); err != nil {
		fmt.Printf("Failed to bootstrap schema: %v\n", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		fmt.Printf("Failed to hash password: %v\n", err)
		os.Exit(1)
	}

	user := &models.User{
		Username:  *username,
		Password:  hash,
		Email:     *email,
		FirstName: *firstName,
		LastName:  *lastName,
		Role:      models.RoleAdmin,
	}
	if err := store.CreateUser(user); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s %s (%s)\n", user.FirstName, user.LastName, user.Email)
}
