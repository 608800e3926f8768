package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// Client membungkus REST backend garment (katalog, order, transaksi,
// keuangan). Semua data bisnis dimiliki backend; service ini hanya
// meneruskan bearer token dari request masuk. Tidak ada retry dan
// tidak ada dedup request, sesuai kontrak sumbernya.
type Client struct {
	baseURL string
	httpc   *http.Client
	logger  *zap.Logger
}

func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{},
		logger:  logger.Named("backend.client"),
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, body io.Reader, contentType string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return newUpstreamError(res.StatusCode, raw)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("decode backend response failed",
			zap.String("path", path),
			zap.Error(err),
		)
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, token string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, token, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path, token string, in, out interface{}) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, http.MethodPost, path, token, body, "application/json", out)
}

// ==================== CATALOG ====================

func (c *Client) CatalogList(ctx context.Context, search string) ([]CatalogItem, error) {
	path := "/api/catalog"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var env struct {
		Data []CatalogItem `json:"data"`
	}
	if err := c.getJSON(ctx, path, "", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) CatalogShow(ctx context.Context, id string) (CatalogItem, error) {
	var env struct {
		Data CatalogItem `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/catalog/show/"+url.PathEscape(id), "", &env); err != nil {
		return CatalogItem{}, err
	}
	return env.Data, nil
}

// ==================== ORDER / CART ====================

func (c *Client) OrderItemList(ctx context.Context, token string) ([]OrderItemRow, error) {
	var env struct {
		Data []OrderItemRow `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/order/itemlist", token, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) AddOrderItem(ctx context.Context, token string, req AddItemRequest) error {
	return c.postJSON(ctx, "/api/order/additem", token, req, nil)
}

func (c *Client) AddQuantity(ctx context.Context, token, orderID string, quantity int) error {
	req := map[string]interface{}{
		"order_id": orderID,
		"quantity": quantity,
	}
	return c.postJSON(ctx, "/api/order/addQuantity", token, req, nil)
}

func (c *Client) RemoveOrderItem(ctx context.Context, token, orderID string) error {
	req := map[string]interface{}{"order_id": orderID}
	b, err := json.Marshal(req)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/api/order/removeItem", token, bytes.NewReader(b), "application/json", nil)
}

func (c *Client) OrderShow(ctx context.Context, token, id string) (OrderRow, error) {
	var env struct {
		Data OrderRow `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/order/show/"+url.PathEscape(id), token, &env); err != nil {
		return OrderRow{}, err
	}
	return env.Data, nil
}

// ==================== CHECKOUT ====================

func (c *Client) Checkout(ctx context.Context, token string, req CheckoutRequest) (CheckoutResult, error) {
	var env struct {
		Data    CheckoutResult `json:"data"`
		Message string         `json:"message"`
	}
	if err := c.postJSON(ctx, "/api/order/checkout", token, req, &env); err != nil {
		return CheckoutResult{}, err
	}
	env.Data.Message = env.Message
	return env.Data, nil
}

// UploadPaymentProof mengirim bukti bayar sebagai multipart ke endpoint
// verifikasi manual backend. Validasi ukuran/tipe file terjadi di layer
// service sebelum sampai ke sini.
func (c *Client) UploadPaymentProof(ctx context.Context, token, transactionID, filename, contentType string, file io.Reader) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("transaction_id", transactionID); err != nil {
		return err
	}

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{fmt.Sprintf(`form-data; name="bukti_pembayaran"; filename="%s"`, filename)}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	if err != nil {
		return err
	}
	if _, err := io.Copy(part, file); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return c.do(ctx, http.MethodPost, "/api/order/checkout/buktibayar", token, &buf, w.FormDataContentType(), nil)
}

// ==================== TRANSACTION ====================

func (c *Client) TransactionList(ctx context.Context, token string) ([]Transaction, error) {
	var env struct {
		Data []Transaction `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/transaction", token, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) TransactionShow(ctx context.Context, token, id string) (Transaction, error) {
	var env struct {
		Data Transaction `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/transaction/"+url.PathEscape(id), token, &env); err != nil {
		return Transaction{}, err
	}
	return env.Data, nil
}

// AdminVerify meneruskan keputusan approve/reject admin. Transisi
// status sepenuhnya milik backend.
func (c *Client) AdminVerify(ctx context.Context, token, transactionID, action string) error {
	req := map[string]string{"status": action}
	return c.postJSON(ctx, "/api/order/admin/verif/"+url.PathEscape(transactionID), token, req, nil)
}

// ==================== USERS / FINANCE / REVIEWS ====================

func (c *Client) Users(ctx context.Context, token string) ([]User, error) {
	var env struct {
		Data []User `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/users", token, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) UsersCount(ctx context.Context, token string) (int64, error) {
	var env struct {
		Data struct {
			Count int64 `json:"count"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/users/count", token, &env); err != nil {
		return 0, err
	}
	return env.Data.Count, nil
}

func (c *Client) FinanceReport(ctx context.Context, token string, req FinanceReportRequest) ([]FinanceEntry, error) {
	var env struct {
		Data []FinanceEntry `json:"data"`
	}
	if err := c.postJSON(ctx, "/api/keuangan/report", token, req, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) ReviewsList(ctx context.Context) ([]Review, error) {
	var env struct {
		Data []Review `json:"data"`
	}
	if err := c.getJSON(ctx, "/api/reviews", "", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (c *Client) ReviewCreate(ctx context.Context, token string, req ReviewRequest) error {
	return c.postJSON(ctx, "/api/reviews", token, req, nil)
}
