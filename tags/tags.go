package tags

import "github.com/yohamta/donburi"

var (
	MainBall     = donburi.NewTag().SetName("MainBall")
	FollowerBall = donburi.NewTag().SetName("FollowerBall")
)

// Resolv tags for ball bounds
const (
	ResolvBall     = "ball"
	ResolvMain     = "main"
	ResolvFollower = "follower"
)
