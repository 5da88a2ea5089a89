package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"sheetEngine/contracts"
)

const WebhookWorkersCount = 5

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher posts cell snapshots to subscribed URLs after a write
// recalculates them. Delivery runs on a fixed pool of workers fed by the
// queue channel; failures are logged, never reported to the editing client.
type WebhookDispatcher struct {
	queue    chan WebhookSendCommand
	mutex    sync.RWMutex
	webhooks map[string]string
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]string{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(canonicalCellId string, webhookUrl string) {
	manager.mutex.Lock()
	defer manager.mutex.Unlock()

	if webhookUrl == "" {
		delete(manager.webhooks, canonicalCellId)
	} else {
		manager.webhooks[canonicalCellId] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(canonicalCellId string) string {
	manager.mutex.RLock()
	defer manager.mutex.RUnlock()

	return manager.webhooks[canonicalCellId]
}

func (manager *WebhookDispatcher) Notify(cells []*contracts.Cell) {
	if len(cells) == 0 {
		return
	}

	go manager.addToQueue(cells)
}

func (manager *WebhookDispatcher) addToQueue(cells []*contracts.Cell) {
	for _, cell := range cells {
		if webhook := manager.GetWebhookUrl(cell.CellId); webhook != "" {
			manager.queue <- WebhookSendCommand{
				Webhook: webhook,
				Cell:    cell,
			}
		}
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err := client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			slog.Error("webhook send failed", "webhook", command.Webhook, "error", err)
		} else if response.StatusCode >= 300 {
			slog.Warn("unexpected webhook response status", "webhook", command.Webhook, "status", response.Status)
		}
	}
}
