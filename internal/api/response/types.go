// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 ROYALMACCRO Contributors

package response

import "github.com/SonnyEclipsed/ROYALMACCRO/internal/auth"

// Message is a bare confirmation body.
type Message struct {
	Message string `json:"message"`
}

// Register is the success body of POST /register.
type Register struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// Login is the success body of POST /login.
type Login struct {
	Message    string `json:"message"`
	PlayerName string `json:"player_name"`
	Age        int    `json:"age"`
	Balance    int    `json:"balance"`
	Location   string `json:"location"`
	Country    string `json:"country"`
}

// LoginFromProfile builds a Login body from a profile.
func LoginFromProfile(p *auth.Profile) Login {
	return Login{
		Message:    "Login successful",
		PlayerName: p.PlayerName,
		Age:        p.Age,
		Balance:    p.Balance,
		Location:   p.Location,
		Country:    p.Country,
	}
}

// Profile is the body of GET /get_user_profile.
type Profile struct {
	PlayerName string `json:"player_name"`
	Age        int    `json:"age"`
	Balance    int    `json:"balance"`
	Location   string `json:"location"`
	Country    string `json:"country"`
}

// ProfileFromModel builds a Profile body from a profile.
func ProfileFromModel(p *auth.Profile) Profile {
	return Profile{
		PlayerName: p.PlayerName,
		Age:        p.Age,
		Balance:    p.Balance,
		Location:   p.Location,
		Country:    p.Country,
	}
}

// Status is the body of GET /get_user_status.
type Status struct {
	LoggedIn bool `json:"logged_in"`
}

// ActiveUser is one entry of GET /active_users.
type ActiveUser struct {
	PlayerName string `json:"player_name"`
	Username   string `json:"username"`
}

// noActiveUsers is the sentinel entry the existing client expects in
// place of an empty presence list. Callers must treat it as "empty",
// never as a real user.
type noActiveUsers struct {
	Username string `json:"username"`
}

// ActiveUsers builds the body of GET /active_users, substituting the
// sentinel when nobody is online.
func ActiveUsers(users []auth.OnlineUser) any {
	if len(users) == 0 {
		return []noActiveUsers{{Username: "None"}}
	}
	out := make([]ActiveUser, len(users))
	for i, u := range users {
		out[i] = ActiveUser{PlayerName: u.PlayerName, Username: u.Username}
	}
	return out
}
