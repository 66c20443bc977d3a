package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	quickConnectAttempts = 60
	quickConnectInterval = 5 * time.Second
)

type quickConnectState struct {
	Secret        string `json:"Secret"`
	Code          string `json:"Code"`
	Authenticated bool   `json:"Authenticated"`
}

type authenticateResponse struct {
	AccessToken string `json:"AccessToken"`
	User        struct {
		ID string `json:"Id"`
	} `json:"User"`
}

func authHeader(deviceID string) string {
	return fmt.Sprintf(`MediaBrowser Client="jellypick", Device="jellypick-tui", DeviceId="%s", Version="1.0.0"`, deviceID)
}

func authRequest(method, url, deviceID string, body []byte) (*http.Response, error) {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Emby-Authorization", authHeader(deviceID))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

// quickConnectAuth performs the Quick Connect handshake: verify the feature
// is enabled, initiate, show the pairing code, then poll with a fixed
// attempt count and interval until authorized or timed out.
func quickConnectAuth(serverURL, deviceID string) (apiKey, userID string, err error) {
	serverURL = strings.TrimRight(serverURL, "/")

	resp, err := authRequest(http.MethodGet, serverURL+"/QuickConnect/Enabled", deviceID, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to check Quick Connect status: %w", err)
	}
	var enabledBody bytes.Buffer
	enabledBody.ReadFrom(resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("quick connect check failed: %d", resp.StatusCode)
	}
	enabled := strings.ToLower(strings.TrimSpace(enabledBody.String()))
	if enabled != "true" && enabled != `"true"` {
		fmt.Println("Quick Connect is not enabled on this server.")
		fmt.Println("Enable it in: Dashboard → General → Quick Connect")
		return "", "", fmt.Errorf("quick connect not enabled")
	}

	resp, err = authRequest(http.MethodPost, serverURL+"/QuickConnect/Initiate", deviceID, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to initiate Quick Connect: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("failed to initiate Quick Connect: %d", resp.StatusCode)
	}

	var qc quickConnectState
	if err := json.NewDecoder(resp.Body).Decode(&qc); err != nil {
		return "", "", fmt.Errorf("invalid Quick Connect response: %w", err)
	}
	if qc.Secret == "" || qc.Code == "" {
		return "", "", fmt.Errorf("invalid Quick Connect response")
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println("  QUICK CONNECT CODE:")
	fmt.Println()
	fmt.Printf("       %s\n", qc.Code)
	fmt.Println()
	fmt.Println("  Enter this code in your Jellyfin app:")
	fmt.Println("  User → Quick Connect → Enter Code")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()
	fmt.Print("Waiting for authorization...")

	for i := 0; i < quickConnectAttempts; i++ {
		time.Sleep(quickConnectInterval)
		fmt.Print(".")

		resp, err := authRequest(http.MethodGet, serverURL+"/QuickConnect/Connect?secret="+qc.Secret, deviceID, nil)
		if err != nil {
			continue
		}
		var state quickConnectState
		decodeErr := json.NewDecoder(resp.Body).Decode(&state)
		resp.Body.Close()
		if resp.StatusCode != http.StatusOK || decodeErr != nil || !state.Authenticated {
			continue
		}

		fmt.Println(" Authorized!")

		body, _ := json.Marshal(map[string]string{"Secret": qc.Secret})
		authResp, err := authRequest(http.MethodPost, serverURL+"/Users/AuthenticateWithQuickConnect", deviceID, body)
		if err != nil {
			return "", "", fmt.Errorf("failed to get access token: %w", err)
		}
		defer authResp.Body.Close()
		if authResp.StatusCode != http.StatusOK {
			return "", "", fmt.Errorf("failed to get access token: %d", authResp.StatusCode)
		}

		var auth authenticateResponse
		if err := json.NewDecoder(authResp.Body).Decode(&auth); err != nil {
			return "", "", err
		}
		if auth.AccessToken == "" || auth.User.ID == "" {
			return "", "", fmt.Errorf("missing access token or user ID in response")
		}
		return auth.AccessToken, auth.User.ID, nil
	}

	fmt.Println(" Timed out!")
	return "", "", fmt.Errorf("quick connect authorization timed out")
}

func prompt(reader *bufio.Reader, label string) string {
	fmt.Print(label)
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

// interactiveSetup walks first-time configuration: server URL, then Quick
// Connect or manual API-key entry. Credentials are persisted on success.
func interactiveSetup(cfg *Config) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("Jellypick Setup")
	fmt.Println(strings.Repeat("=", 40))
	fmt.Println()

	serverURL := prompt(reader, "Enter your Jellyfin server URL (e.g., http://localhost:8096): ")
	if serverURL == "" {
		return fmt.Errorf("server URL is required")
	}
	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		serverURL = "http://" + serverURL
	}

	fmt.Println()
	fmt.Println("Choose authentication method:")
	fmt.Println("  1. Quick Connect (recommended)")
	fmt.Println("  2. Manual API key entry")
	fmt.Println()
	choice := prompt(reader, "Enter choice [1]: ")
	if choice == "" {
		choice = "1"
	}

	if choice == "1" {
		deviceID, err := cfg.DeviceID()
		if err != nil {
			return err
		}
		apiKey, userID, err := quickConnectAuth(serverURL, deviceID)
		if err == nil {
			return saveCredentials(cfg, serverURL, apiKey, userID)
		}
		fmt.Println()
		fmt.Println("Quick Connect failed. You can try manual entry instead.")
		choice = "2"
	}

	if choice == "2" {
		fmt.Println()
		fmt.Println("To get an API key:")
		fmt.Println("  1. Go to Dashboard → API Keys")
		fmt.Println("  2. Create a new key for 'jellypick'")
		fmt.Println()
		apiKey := prompt(reader, "Enter your API key: ")
		if apiKey == "" {
			return fmt.Errorf("API key is required")
		}

		fmt.Println()
		fmt.Println("To get your User ID:")
		fmt.Println("  1. Go to Dashboard → Users")
		fmt.Println("  2. Click on your user")
		fmt.Println("  3. The User ID is in the URL")
		fmt.Println()
		userID := prompt(reader, "Enter your User ID: ")
		if userID == "" {
			return fmt.Errorf("user ID is required")
		}

		return saveCredentials(cfg, serverURL, apiKey, userID)
	}

	return fmt.Errorf("setup cancelled")
}

func saveCredentials(cfg *Config, serverURL, apiKey, userID string) error {
	cfg.Jellyfin.URL = serverURL
	cfg.Jellyfin.APIKey = apiKey
	cfg.Jellyfin.UserID = userID
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Printf("Credentials saved to %s\n", cfg.savePath())
	return nil
}
