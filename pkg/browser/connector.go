package browser

import (
	"context"
	"time"

	"github.com/tebeka/selenium"
	"github.com/tebeka/selenium/chrome"
)

// chromeArgs are the launch flags browserless expects for containerized
// chrome instances.
var chromeArgs = []string{
	"--no-sandbox",
	"--disable-dev-shm-usage",
	"--disable-gpu",
}

// Connector provisions new backend driver sessions.
type Connector interface {
	Create(ctx context.Context) (Driver, error)
}

// BackendConnector dials the remote browserless backend over the WebDriver
// wire protocol. It holds the base URL and the optional bearer credential.
type BackendConnector struct {
	baseURL      string
	token        string
	implicitWait time.Duration
}

// NewBackendConnector creates a connector for the given backend.
func NewBackendConnector(baseURL, token string, implicitWait time.Duration) *BackendConnector {
	return &BackendConnector{
		baseURL:      baseURL,
		token:        token,
		implicitWait: implicitWait,
	}
}

// Create provisions a new chrome session on the backend. Every failure mode
// (network unreachable, rejected capabilities, rejected credential) surfaces
// as BackendUnavailable carrying the underlying cause.
func (c *BackendConnector) Create(ctx context.Context) (Driver, error) {
	caps := selenium.Capabilities{"browserName": "chrome"}
	caps.AddChrome(chrome.Capabilities{Args: chromeArgs})
	if c.token != "" {
		// Browserless consumes the credential as a capability on the
		// WebDriver endpoint.
		caps["browserless:token"] = c.token
	}

	wd, err := await(ctx, func() (selenium.WebDriver, error) {
		return selenium.NewRemote(caps, c.baseURL+"/webdriver")
	})
	if err != nil {
		return nil, WrapError(KindBackendUnavailable, err)
	}

	if err := wd.SetImplicitWaitTimeout(c.implicitWait); err != nil {
		_ = wd.Quit()
		return nil, WrapError(KindBackendUnavailable, err)
	}

	return &remoteDriver{wd: wd}, nil
}

// remoteDriver adapts a selenium remote driver to the Driver interface.
type remoteDriver struct {
	wd selenium.WebDriver
}

func (d *remoteDriver) Get(url string) error {
	return d.wd.Get(url)
}

func (d *remoteDriver) Title() (string, error) {
	return d.wd.Title()
}

func (d *remoteDriver) CurrentURL() (string, error) {
	return d.wd.CurrentURL()
}

func (d *remoteDriver) PageSource() (string, error) {
	return d.wd.PageSource()
}

func (d *remoteDriver) CurrentWindowHandle() (string, error) {
	return d.wd.CurrentWindowHandle()
}

func (d *remoteDriver) FindElement(by, value string) (Element, error) {
	el, err := d.wd.FindElement(by, value)
	if err != nil {
		return nil, err
	}
	return &remoteElement{el: el}, nil
}

func (d *remoteDriver) ExecuteScript(script string, args []interface{}) (interface{}, error) {
	return d.wd.ExecuteScript(script, args)
}

func (d *remoteDriver) Screenshot() ([]byte, error) {
	return d.wd.Screenshot()
}

func (d *remoteDriver) Quit() error {
	return d.wd.Quit()
}

// remoteElement adapts a selenium element to the Element interface.
type remoteElement struct {
	el selenium.WebElement
}

func (e *remoteElement) Click() error {
	return e.el.Click()
}

func (e *remoteElement) TagName() (string, error) {
	return e.el.TagName()
}

func (e *remoteElement) Text() (string, error) {
	return e.el.Text()
}

func (e *remoteElement) GetAttribute(name string) (string, error) {
	return e.el.GetAttribute(name)
}

func (e *remoteElement) Location() (Point, error) {
	p, err := e.el.Location()
	if err != nil {
		return Point{}, err
	}
	return Point{X: p.X, Y: p.Y}, nil
}

func (e *remoteElement) Size() (Size, error) {
	s, err := e.el.Size()
	if err != nil {
		return Size{}, err
	}
	return Size{Width: s.Width, Height: s.Height}, nil
}
