package mykafka

import "time"

type DrinkCreatedEvent struct {
	DrinkCreatedID uint          `json:"drink_created_id"`
	UserID         uint          `json:"user_id"`
	DrinkID        uint          `json:"drink_id"`
	Supplements    map[uint]uint `json:"supplement_id"`
	CreatedAt      time.Time     `json:"created_at"`
}

type DrinkLikedEvent struct {
	LikeID         uint      `json:"like_id"`
	UserID         uint      `json:"user_id"`
	DrinkCreatedID uint      `json:"drink_created_id"`
	CreatedAt      time.Time `json:"created_at"`
}
