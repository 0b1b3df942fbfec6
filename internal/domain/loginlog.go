package domain

import "time"

type LoginLog struct {
	ID         int64     `json:"id"`
	Email      string    `json:"email"`
	LoginTime  time.Time `json:"login_time"`
	DeviceInfo string    `json:"device_info"`
}
