package types

// Subset of the Bluesky app.bsky.feed.getFeed response that the social
// adapter actually reads.

type FeedResponse struct {
	Cursor string      `json:"cursor"`
	Feed   []FeedEntry `json:"feed"`
}

type FeedEntry struct {
	Post Post `json:"post"`
}

type Post struct {
	URI         string `json:"uri"`
	CID         string `json:"cid"`
	Author      Author `json:"author"`
	Record      Record `json:"record"`
	IndexedAt   string `json:"indexedAt"`
	LikeCount   int    `json:"likeCount"`
	ReplyCount  int    `json:"replyCount"`
	RepostCount int    `json:"repostCount"`
}

type Author struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName"`
}

type Record struct {
	Type      string   `json:"$type"`
	CreatedAt string   `json:"createdAt"`
	Langs     []string `json:"langs"`
	Text      string   `json:"text"`
}
