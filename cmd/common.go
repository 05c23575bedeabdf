/*
Copyright © 2025 Valentyn Solomko <valentyn.solomko@gmail.com>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/valpere/pereweb/internal/translator"
)

// buildServices constructs the delegate bindings in fallback order. The
// returned cleanup closes any binding that holds a client connection.
func buildServices(ctx context.Context, serviceNames []string, credentials, systranAPIKey, mymemoryEmailAddr string) ([]translator.TranslationService, func(), error) {
	var list []translator.TranslationService
	var closers []io.Closer

	for _, name := range serviceNames {
		switch name {
		case "google":
			svc, err := translator.NewGoogleService(ctx, translator.ServiceConfig{Credentials: credentials})
			if err != nil {
				fmt.Fprintf(os.Stderr, "Google service unavailable: %v, skipping\n", err)
				continue
			}
			list = append(list, svc)
			closers = append(closers, svc)
		case "systran":
			list = append(list, translator.NewSystranService(systranAPIKey))
		case "mymemory":
			list = append(list, translator.NewMyMemoryService(mymemoryEmailAddr))
		case "demo":
			list = append(list, translator.NewDemoService())
		default:
			fmt.Fprintf(os.Stderr, "Unknown service: %s, skipping\n", name)
		}
	}

	if len(list) == 0 {
		return nil, nil, fmt.Errorf("no valid services configured")
	}

	cleanup := func() {
		for _, c := range closers {
			_ = c.Close()
		}
	}

	return list, cleanup, nil
}
