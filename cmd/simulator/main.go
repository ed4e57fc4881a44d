package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// sessionView mirrors the wizard snapshot returned by the API.
type sessionView struct {
	SessionID            string `json:"session_id"`
	InspectionID         string `json:"inspection_id"`
	State                string `json:"state"`
	FlowType             string `json:"flow_type"`
	ShowIntro            bool   `json:"show_intro"`
	AreaIndex            int    `json:"area_index"`
	AreaCount            int    `json:"area_count"`
	CheckpointIndex      int    `json:"checkpoint_index"`
	CheckpointCount      int    `json:"checkpoint_count"`
	CompletionPercentage int    `json:"completion_percentage"`
	TasksCreated         int    `json:"tasks_created"`
	Checkpoint           *struct {
		ID       string `json:"id"`
		Question string `json:"question"`
	} `json:"checkpoint,omitempty"`
	Area *struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"area,omitempty"`
}

var authToken string

func authorizedRequest(method, url string, body *bytes.Buffer) (*http.Response, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, url, body)
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}
	client := &http.Client{Timeout: 10 * time.Second}
	return client.Do(req)
}

func postJSON(url string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	resp, err := authorizedRequest(http.MethodPost, url, bytes.NewBuffer(data))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%s returned status %d", url, resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func register(apiURL string) error {
	suffix := rand.Intn(1_000_000)
	payload := map[string]string{
		"username":   fmt.Sprintf("sim-owner-%d", suffix),
		"email":      fmt.Sprintf("sim-owner-%d@example.com", suffix),
		"password":   "simulated-password-1",
		"first_name": "Sim",
		"last_name":  "Owner",
	}

	var response struct {
		Token string `json:"token"`
	}
	if err := postJSON(apiURL+"/auth/register", payload, &response); err != nil {
		return fmt.Errorf("failed to register: %w", err)
	}
	authToken = response.Token

	log.WithField("username", payload["username"]).Info("Registered simulated owner")
	return nil
}

func createProperty(apiURL string) (string, error) {
	streets := []string{"Maple St", "Oak Ave", "Cedar Ln", "Birch Rd", "Elm Ct"}
	payload := map[string]interface{}{
		"name":           "Simulated Home",
		"address":        fmt.Sprintf("%d %s", 1+rand.Intn(200), streets[rand.Intn(len(streets))]),
		"city":           "Portland",
		"state":          "OR",
		"zip_code":       "97201",
		"year_built":     1950 + rand.Intn(70),
		"square_footage": 900 + rand.Intn(2500),
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := postJSON(apiURL+"/properties", payload, &created); err != nil {
		return "", fmt.Errorf("failed to create property: %w", err)
	}

	log.WithFields(log.Fields{
		"property_id": created.ID,
		"address":     payload["address"],
	}).Info("Created property")
	return created.ID, nil
}

// runInspection walks one session to completion, answering checkpoints at
// random with the given chance of a "bad" answer.
func runInspection(apiURL, propertyID, mode string, areaIDs []string, badChance float64) error {
	start := map[string]interface{}{
		"property_id": propertyID,
		"mode":        mode,
	}
	if mode == "quick" {
		start["area_ids"] = areaIDs
	}

	var view sessionView
	if err := postJSON(apiURL+"/inspections/start", start, &view); err != nil {
		return fmt.Errorf("failed to start inspection: %w", err)
	}
	log.WithFields(log.Fields{
		"session_id": view.SessionID,
		"flow_type":  view.FlowType,
		"areas":      view.AreaCount,
	}).Info("Started inspection")

	base := apiURL + "/inspections/sessions/" + view.SessionID
	for view.State == "in_progress" {
		if !view.ShowIntro && view.Checkpoint != nil {
			answer := map[string]string{"answer": "good"}
			if rand.Float64() < badChance {
				answer["answer"] = "bad"
				answer["note"] = "Flagged during simulated walkthrough"
			}
			if err := postJSON(base+"/answer", answer, &view); err != nil {
				return fmt.Errorf("failed to answer checkpoint: %w", err)
			}
		}
		if err := postJSON(base+"/next", nil, &view); err != nil {
			return fmt.Errorf("failed to advance session: %w", err)
		}
		log.WithFields(log.Fields{
			"state":      view.State,
			"completion": view.CompletionPercentage,
		}).Debug("Advanced session")
	}

	log.WithFields(log.Fields{
		"inspection_id": view.InspectionID,
		"completion":    view.CompletionPercentage,
		"tasks_created": view.TasksCreated,
	}).Info("Inspection complete")
	return nil
}

func main() {
	apiURL := os.Getenv("API_BASE_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080/api"
	}

	runs := 1
	if v := os.Getenv("SIM_RUNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			runs = n
		}
	}

	badChance := 0.2
	if v := os.Getenv("SIM_BAD_CHANCE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 1 {
			badChance = f
		}
	}

	log.WithFields(log.Fields{
		"api_url":    apiURL,
		"runs":       runs,
		"bad_chance": badChance,
	}).Info("Starting inspection simulation")

	if err := register(apiURL); err != nil {
		log.WithError(err).Fatal("Registration failed, is the API reachable?")
	}

	propertyID, err := createProperty(apiURL)
	if err != nil {
		log.WithError(err).Fatal("Property creation failed")
	}

	quickAreas := [][]string{
		{"hvac"},
		{"hvac", "plumbing"},
		{"roof", "water-heater", "basement"},
	}

	for i := 0; i < runs; i++ {
		mode := "quick"
		var areas []string
		if i%3 == 2 {
			mode = "full"
		} else {
			areas = quickAreas[rand.Intn(len(quickAreas))]
		}
		if err := runInspection(apiURL, propertyID, mode, areas, badChance); err != nil {
			log.WithError(err).Error("Inspection run failed")
		}
	}

	log.Info("Simulation finished")
}
