// Copyright 2019 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Serves a live hex view of dumped device memory images. Images are .bin
// files written by the flipload/dfusim tools; the page refreshes whenever
// a dump in the watched directory changes.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/golang/glog"
	"github.com/labstack/echo"

	"github.com/muyachang/atmel-usbdfu/util"
)

var (
	portFlag = flag.Int("port", 8080, "Server HTTP port number")
	dirFlag  = flag.String("dir", "dumps", "Input memory dump directory to display")
)

const (
	imageExt     = ".bin"
	bytesPerLine = 16
)

type HexLine struct {
	Offset string `json:"Offset"`
	Hex    string `json:"Hex"`
	Ascii  string `json:"Ascii"`
}

// A go-routine that waits for directory changes.
// Notifies changes by publishing a message via broker.
func watchDirectoryChanges(broker *util.Broker[fsnotify.Event]) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		glog.Errorf("NewWatcher failed: %v", err)
		return
	}
	defer watcher.Close()

	err = watcher.Add(*dirFlag)
	if err != nil {
		glog.Errorf("watcher.Add failed: %v", err)
		return
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				glog.Warning("watcher.Events is not ok. Aborting")
				return
			}
			glog.V(1).Infof("Watcher event: %v", event)
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Remove == fsnotify.Remove ||
				event.Op&fsnotify.Rename == fsnotify.Rename {
				if strings.HasSuffix(event.Name, imageExt) {
					broker.Publish(event)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				glog.Warning("watcher.Errors is not ok. Aborting")
				return
			}
			glog.Warning("Watcher error:", err)
		}
	}
}

func waitForImages(c echo.Context, watcher *util.Broker[fsnotify.Event]) error {
	var wg sync.WaitGroup
	timedOut := time.NewTimer(5 * time.Minute)

	wg.Add(1)
	go func() {
		defer wg.Done()
		dirChanged := watcher.Subscribe()
		defer watcher.Unsubscribe(dirChanged)

		for {
			select {
			case <-timedOut.C:
				glog.V(1).Infof("Timed out")
				return
			case <-c.Request().Context().Done():
				glog.V(1).Infof("Client disconnected")
				return
			case <-dirChanged:
				glog.V(1).Infof("Received dir notification from broker")
				return
			}
		}
	}()

	wg.Wait()
	return nil
}

func hexDump(data []byte) []HexLine {
	var lines []HexLine
	for off := 0; off < len(data); off += bytesPerLine {
		end := off + bytesPerLine
		if end > len(data) {
			end = len(data)
		}
		var hx, asc strings.Builder
		for i := off; i < end; i++ {
			fmt.Fprintf(&hx, "%02x ", data[i])
			if data[i] >= 0x20 && data[i] < 0x7F {
				asc.WriteByte(data[i])
			} else {
				asc.WriteByte('.')
			}
		}
		lines = append(lines, HexLine{
			Offset: fmt.Sprintf("%06x", off),
			Hex:    strings.TrimRight(hx.String(), " "),
			Ascii:  asc.String(),
		})
	}
	return lines
}

const indexHtml = `<!DOCTYPE html>
<html>
<head><title>Memory dump viewer</title>
<style>body{font-family:monospace} td{padding:0 1em}</style></head>
<body>
<h3>Memory dumps</h3>
<ul id="images"></ul>
<table id="dump"></table>
<script>
async function refresh(wait) {
  const files = await (await fetch('/images?wait=' + wait)).json();
  const ul = document.getElementById('images');
  ul.innerHTML = '';
  for (const f of files || []) {
    const li = document.createElement('li');
    li.innerHTML = '<a href="#" onclick="show(\'' + f + '\');return false">' + f + '</a>';
    ul.appendChild(li);
  }
  refresh(true);
}
async function show(name) {
  const lines = await (await fetch('/data/' + name)).json();
  const t = document.getElementById('dump');
  t.innerHTML = '';
  for (const l of lines || []) {
    const tr = document.createElement('tr');
    tr.innerHTML = '<td>' + l.Offset + '</td><td>' + l.Hex + '</td><td>' + l.Ascii + '</td>';
    t.appendChild(tr);
  }
}
refresh(false);
</script>
</body>
</html>`

func main() {
	flag.Parse()
	defer glog.Flush()

	watchBroker := util.NewBroker[fsnotify.Event]()
	go watchBroker.Start()
	go watchDirectoryChanges(watchBroker)

	e := echo.New()

	e.GET("/", func(c echo.Context) error {
		return c.HTML(http.StatusOK, indexHtml)
	})

	// Returns list of memory image files in directory.
	e.GET("/images", func(c echo.Context) error {
		if c.QueryParam("wait") != "false" {
			waitForImages(c, watchBroker)
		}
		files, err := filepath.Glob(path.Join(*dirFlag, "*"+imageExt))
		if err != nil {
			glog.Errorf("Glob failed: %v", err)
			return err
		}
		for i, f := range files {
			files[i] = strings.TrimSuffix(filepath.Base(f), imageExt)
		}
		return c.JSON(http.StatusOK, files)
	})

	// Returns the hex dump of a single memory image.
	e.GET("/data/:image", func(c echo.Context) error {
		name := c.Param("image")
		if strings.ContainsAny(name, "/\\.") {
			return c.String(http.StatusBadRequest, "Invalid image name")
		}
		data, err := os.ReadFile(path.Join(*dirFlag, name+imageExt))
		if err != nil {
			glog.Errorf("Error loading image file: %v", err)
			return err
		}
		return c.JSON(http.StatusOK, hexDump(data))
	})

	glog.Fatal(e.Start(fmt.Sprintf(":%d", *portFlag)))
}
