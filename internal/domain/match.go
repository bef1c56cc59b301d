package domain

import "time"

// Match is one player's row of one match, as stored in any partition.
type Match struct {
	ID        string    `json:"id"`
	MatchID   string    `json:"match_id"`
	Uno       string    `json:"uno"`
	Username  string    `json:"username"`
	Clantag   string    `json:"clantag"`
	Time      time.Time `json:"time"`
	Map       string    `json:"map"`
	Mode      string    `json:"mode"`
	Team      string    `json:"team"`
	Result    int       `json:"result"` // 0 unknown, 1 win, 2 loss, 3 draw
	Kills     int       `json:"kills"`
	Deaths    int       `json:"deaths"`
	Assists   int       `json:"assists"`
	Score     int       `json:"score"`
	Duration  int       `json:"duration"` // seconds
	CreatedAt time.Time `json:"created_at"`
}
