package service

import "time"

const backoffDuration = 2 * time.Second
