package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"

	appdb "github.com/yourorg/wayfindsg/internal/db"
)

func main() {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println("==== WayFindSG CLI ====")
		fmt.Println("1) Health check API")
		fmt.Println("2) Seed database (create sample users)")
		fmt.Println("3) Plan sample route (Jurong East -> City Hall)")
		fmt.Println("4) Exit")
		fmt.Print("Select option: ")
		choice, _ := reader.ReadString('\n')
		choice = strings.TrimSpace(choice)
		switch choice {
		case "1":
			doHealthCheck()
		case "2":
			doSeed()
		case "3":
			doPlanSample()
		case "4":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Invalid option")
		}
		fmt.Println()
	}
}

func baseURL() string {
	base := os.Getenv("BASE_URL")
	if base == "" {
		base = "http://127.0.0.1:8080"
	}
	return strings.TrimRight(base, "/")
}

func doHealthCheck() {
	resp, err := http.Get(baseURL() + "/api/health")
	if err != nil {
		fmt.Println("Health: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	fmt.Println("Health status:", resp.Status)
}

func doSeed() {
	db, err := appdb.Connect()
	if err != nil {
		fmt.Println("DB connect error:", err)
		return
	}
	defer db.Close()
	if err := appdb.EnsureSchema(db); err != nil {
		fmt.Println("Schema error:", err)
		return
	}

	seed := []struct {
		username, email, name, role, password string
	}{
		{"traveler", "traveler@example.sg", "Sample Traveler", "patient", "traveler-pass"},
		{"caregiver", "caregiver@example.sg", "Sample Caregiver", "caregiver", "caregiver-pass"},
	}
	for _, u := range seed {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Println("Hash error:", err)
			return
		}
		_, err = db.Exec(`
			INSERT IGNORE INTO users (username, email, name, role, password_hash)
			VALUES (?, ?, ?, ?, ?)
		`, u.username, u.email, u.name, u.role, string(hash))
		if err != nil {
			fmt.Printf("Seed %s error: %v\n", u.username, err)
			return
		}
		fmt.Printf("Seeded user %s (password %q)\n", u.username, u.password)
	}
}

func doPlanSample() {
	url := baseURL() + "/api/route/plan?startLat=1.333152&startLng=103.742286&destLat=1.292936&destLng=103.852585"
	resp, err := http.Get(url)
	if err != nil {
		fmt.Println("Plan: ERROR:", err)
		return
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	fmt.Println("Plan status:", resp.Status)
	fmt.Println(string(body))
}
