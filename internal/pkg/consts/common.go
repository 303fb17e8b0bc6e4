package consts

// 订阅页的三种状态
const (
	FeedStateZeroAuthors = "zero_authors"
	FeedStateZeroPosts   = "zero_posts"
	FeedStatePostsFound  = "posts_found"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)
