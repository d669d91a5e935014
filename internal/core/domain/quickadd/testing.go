package quickadd

import (
	"context"
	"sync"
	"time"
)

type TestOracleCall struct {
	Query         string
	ReferenceTime time.Time
}

type TestOracle struct {
	Draft RawDraft
	Error error
	Calls []TestOracleCall
	lock  sync.Mutex
}

func NewTestOracle() *TestOracle {
	return &TestOracle{}
}

func (o *TestOracle) Parse(ctx context.Context, query string, referenceTime time.Time) (RawDraft, error) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.Calls = append(o.Calls, TestOracleCall{Query: query, ReferenceTime: referenceTime})
	if o.Error != nil {
		return RawDraft{}, o.Error
	}
	return o.Draft, nil
}
