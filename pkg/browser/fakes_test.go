package browser

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// fakeDriver is an in-memory Driver for tests.
type fakeDriver struct {
	mu sync.Mutex

	id         int
	currentURL string
	title      string
	source     string
	handle     string

	getErr        error
	findErr       error
	quitErr       error
	scriptErr     error
	screenshotErr error

	scriptResult interface{}
	screenshot   []byte
	element      *fakeElement

	// blockGet, when non-nil, makes Get wait until the channel closes.
	blockGet chan struct{}

	getCalls  int
	findCalls int
	quitCalls int
}

func (d *fakeDriver) Get(url string) error {
	d.mu.Lock()
	block := d.blockGet
	d.mu.Unlock()
	if block != nil {
		<-block
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.getCalls++
	if d.getErr != nil {
		return d.getErr
	}
	d.currentURL = url
	return nil
}

func (d *fakeDriver) Title() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.title, nil
}

func (d *fakeDriver) CurrentURL() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.currentURL, nil
}

func (d *fakeDriver) PageSource() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source, nil
}

func (d *fakeDriver) CurrentWindowHandle() (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.handle, nil
}

func (d *fakeDriver) FindElement(by, value string) (Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.findCalls++
	// The body wait issued after navigation and clicks always succeeds.
	if by == StrategyTagName.Locator() && value == "body" {
		return &fakeElement{tagName: "body"}, nil
	}
	if d.findErr != nil {
		return nil, d.findErr
	}
	if d.element != nil {
		return d.element, nil
	}
	return &fakeElement{tagName: "div"}, nil
}

func (d *fakeDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.scriptErr != nil {
		return nil, d.scriptErr
	}
	return d.scriptResult, nil
}

func (d *fakeDriver) Screenshot() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.screenshotErr != nil {
		return nil, d.screenshotErr
	}
	return d.screenshot, nil
}

func (d *fakeDriver) Quit() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quitCalls++
	return d.quitErr
}

// fakeElement is an in-memory Element for tests.
type fakeElement struct {
	tagName  string
	text     string
	attrs    map[string]string
	location Point
	size     Size
	clickErr error

	clickCalls int
}

func (e *fakeElement) Click() error {
	e.clickCalls++
	return e.clickErr
}

func (e *fakeElement) TagName() (string, error) {
	return e.tagName, nil
}

func (e *fakeElement) Text() (string, error) {
	return e.text, nil
}

func (e *fakeElement) GetAttribute(name string) (string, error) {
	return e.attrs[name], nil
}

func (e *fakeElement) Location() (Point, error) {
	return e.location, nil
}

func (e *fakeElement) Size() (Size, error) {
	return e.size, nil
}

// fakeConnector counts creates and hands out sequentially numbered drivers.
type fakeConnector struct {
	creates int32
	delay   time.Duration
	err     error

	mu      sync.Mutex
	drivers []*fakeDriver
	next    *fakeDriver
}

func (c *fakeConnector) Create(ctx context.Context) (Driver, error) {
	n := atomic.AddInt32(&c.creates, 1)
	if c.delay > 0 {
		time.Sleep(c.delay)
	}
	if c.err != nil {
		return nil, WrapError(KindBackendUnavailable, c.err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	d := c.next
	if d == nil {
		d = &fakeDriver{}
	}
	c.next = nil
	d.id = int(n)
	c.drivers = append(c.drivers, d)
	return d, nil
}

func (c *fakeConnector) createCount() int {
	return int(atomic.LoadInt32(&c.creates))
}
