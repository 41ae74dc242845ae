package llrb

import (
	"regexp"
	"strings"
	"time"

	"github.com/ValentinKolb/dWeet/lib/db"
	"github.com/ValentinKolb/dWeet/lib/db/util"
	"github.com/ValentinKolb/dWeet/lib/index"
	"github.com/ValentinKolb/dWeet/lib/model"
)

// hashtag matches a '#' followed by either a run of word characters or a run
// of non word characters. Only the first match of a message is its topic.
var hashtag = regexp.MustCompile(`#(\w+|\W+)`)

// TopicOf returns the topic of a message, which is the first hashtag
// including the leading '#'. The boolean return value is false if the
// message contains no hashtag.
func TopicOf(message string) (string, bool) {
	topic := hashtag.FindString(message)
	return topic, topic != ""
}

// topicCount counts the mentions of a single topic. The counter only grows.
type topicCount struct {
	topic    string
	mentions int
}

// --------------------------------------------------------------------------
// MessageStore
// --------------------------------------------------------------------------

// messageStoreImpl indexes weets by id (unique), by timestamp (multi, newest
// first) and counts topics in a third index keyed by the hashtag.
type messageStoreImpl struct {
	byID    *index.OrderedIndex[int, model.Weet]
	byDate  *index.OrderedIndex[time.Time, model.Weet]
	topics  *index.OrderedIndex[string, *topicCount]
	lengths *util.LengthHistogram
}

// NewMessageStore creates an empty message store
func NewMessageStore() db.WeetDB {
	return &messageStoreImpl{
		byID:    index.NewOrdered[int, model.Weet](index.PolicyUnique),
		byDate:  index.New[time.Time, model.Weet](newestFirst, index.PolicyMulti),
		topics:  index.NewOrdered[string, *topicCount](index.PolicyUnique),
		lengths: util.NewLengthHistogram(),
	}
}

// AddWeet adds a weet unless the id is already taken and counts its topic
func (m *messageStoreImpl) AddWeet(weet model.Weet) bool {
	if m.byID.Has(weet.ID) {
		return false
	}
	m.byID.Put(weet.ID, weet)
	m.byDate.Put(weet.Date, weet)
	m.lengths.AddSample(len(weet.Message))

	if topic, ok := TopicOf(weet.Message); ok {
		if tc, found := m.topics.Get(topic); found {
			tc.mentions++
		} else {
			m.topics.Put(topic, &topicCount{topic: topic, mentions: 1})
		}
	}
	return true
}

func (m *messageStoreImpl) GetWeet(id int) (model.Weet, bool) {
	return m.byID.Get(id)
}

func (m *messageStoreImpl) GetWeets() []model.Weet {
	return m.byDate.Values()
}

func (m *messageStoreImpl) GetWeetsByUser(userID int) []model.Weet {
	return m.filter(func(w model.Weet) bool {
		return w.UserID == userID
	})
}

func (m *messageStoreImpl) GetWeetsContaining(query string) []model.Weet {
	return m.filter(func(w model.Weet) bool {
		return strings.Contains(w.Message, query)
	})
}

func (m *messageStoreImpl) GetWeetsOn(date time.Time) []model.Weet {
	return m.filter(func(w model.Weet) bool {
		return w.Date.Equal(date)
	})
}

func (m *messageStoreImpl) GetWeetsBefore(date time.Time) []model.Weet {
	return m.filter(func(w model.Weet) bool {
		return w.Date.Before(date)
	})
}

// filter traverses the date index, so results are newest first
func (m *messageStoreImpl) filter(pred func(w model.Weet) bool) []model.Weet {
	return m.byDate.Filter(func(_ time.Time, w model.Weet) bool {
		return pred(w)
	}).Drain()
}

// GetTrending ranks all topics by mentions and returns the first
// db.TrendingSize of them
func (m *messageStoreImpl) GetTrending() ([]string, bool) {
	if m.topics.Len() < db.TrendingSize {
		return nil, false
	}

	ranked := make([]index.Ranked[string], 0, m.topics.Len())
	m.topics.Ascend(func(topic string, tc *topicCount) bool {
		ranked = append(ranked, index.Ranked[string]{Key: topic, Count: tc.mentions})
		return true
	})

	return index.Keys(index.TopN(ranked, db.TrendingSize)), true
}

func (m *messageStoreImpl) GetTopicMentions(topic string) (int, bool) {
	tc, ok := m.topics.Get(topic)
	if !ok {
		return 0, false
	}
	return tc.mentions, true
}

func (m *messageStoreImpl) NumTopics() int {
	return m.topics.Len()
}

func (m *messageStoreImpl) Len() int {
	return m.byID.Len()
}

func (m *messageStoreImpl) Info() db.DatabaseInfo {
	meta := &struct {
		Topics         int                `json:"topics"`
		MessageLengths util.LengthSummary `json:"message_lengths"`
	}{
		Topics:         m.topics.Len(),
		MessageLengths: m.lengths.Summary(),
	}

	return db.DatabaseInfo{
		DbType: db.ImplLLRB,
		Size:   m.Len(),
		Indexes: []db.IndexInfo{
			indexInfo("weets_by_id", m.byID),
			indexInfo("weets_by_date", m.byDate),
			indexInfo("topics", m.topics),
		},
		Metadata: meta,
	}
}
