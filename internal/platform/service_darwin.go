//go:build darwin && cgo

package platform

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Cocoa -framework ApplicationServices

#include <stdlib.h>
#include <string.h>
#import <Cocoa/Cocoa.h>
#import <ApplicationServices/ApplicationServices.h>

static int dockeyesTrusted(void) {
    return AXIsProcessTrusted() ? 1 : 0;
}

static void dockeyesPrompt(void) {
    @autoreleasepool {
        NSDictionary *options = @{(__bridge id)kAXTrustedCheckOptionPrompt: @YES};
        AXIsProcessTrustedWithOptions((__bridge CFDictionaryRef)options);
    }
}

static void dockeyesMouseLocation(double *x, double *y) {
    NSPoint point = [NSEvent mouseLocation];
    *x = point.x;
    *y = point.y;
}

// The first screen carries the menu bar and defines the global origin.
static double dockeyesScreenHeight(void) {
    @autoreleasepool {
        NSScreen *screen = [[NSScreen screens] firstObject];
        if (screen == nil) {
            return -1;
        }
        return screen.frame.size.height;
    }
}

static char *dockeyesAppName(void) {
    @autoreleasepool {
        NSString *name = [[NSRunningApplication currentApplication] localizedName];
        if (name == nil || [name length] == 0) {
            return NULL;
        }
        return strdup([name UTF8String]);
    }
}

static int dockeyesFrame(AXUIElementRef item, double *x, double *y, double *w, double *h) {
    CFTypeRef positionValue = NULL;
    CFTypeRef sizeValue = NULL;
    CGPoint position;
    CGSize size;
    int ok = 0;

    if (AXUIElementCopyAttributeValue(item, kAXPositionAttribute, &positionValue) == kAXErrorSuccess &&
        AXUIElementCopyAttributeValue(item, kAXSizeAttribute, &sizeValue) == kAXErrorSuccess &&
        AXValueGetValue((AXValueRef)positionValue, kAXValueTypeCGPoint, &position) &&
        AXValueGetValue((AXValueRef)sizeValue, kAXValueTypeCGSize, &size)) {
        *x = position.x;
        *y = position.y;
        *w = size.width;
        *h = size.height;
        ok = 1;
    }
    if (positionValue != NULL) {
        CFRelease(positionValue);
    }
    if (sizeValue != NULL) {
        CFRelease(sizeValue);
    }
    return ok;
}

// dockeyesLocateIcon walks the Dock's first list from the end so a pinned
// Finder with the same title is not picked up first.
static int dockeyesLocateIcon(const char *title, double *x, double *y, double *w, double *h) {
    @autoreleasepool {
        NSArray *docks = [NSRunningApplication runningApplicationsWithBundleIdentifier:@"com.apple.dock"];
        NSRunningApplication *dock = [docks lastObject];
        if (dock == nil) {
            return 0;
        }

        AXUIElementRef app = AXUIElementCreateApplication(dock.processIdentifier);
        CFArrayRef children = NULL;
        int found = 0;

        if (AXUIElementCopyAttributeValue(app, kAXChildrenAttribute, (CFTypeRef *)&children) == kAXErrorSuccess &&
            children != NULL && CFArrayGetCount(children) > 0) {
            AXUIElementRef list = (AXUIElementRef)CFArrayGetValueAtIndex(children, 0);
            CFArrayRef items = NULL;
            if (AXUIElementCopyAttributeValue(list, kAXChildrenAttribute, (CFTypeRef *)&items) == kAXErrorSuccess &&
                items != NULL) {
                CFStringRef wanted = CFStringCreateWithCString(NULL, title, kCFStringEncodingUTF8);
                for (CFIndex i = CFArrayGetCount(items) - 1; i >= 0 && !found; i--) {
                    AXUIElementRef item = (AXUIElementRef)CFArrayGetValueAtIndex(items, i);
                    CFTypeRef value = NULL;
                    if (AXUIElementCopyAttributeValue(item, kAXTitleAttribute, &value) == kAXErrorSuccess && value != NULL) {
                        if (CFGetTypeID(value) == CFStringGetTypeID() &&
                            CFStringCompare((CFStringRef)value, wanted, 0) == kCFCompareEqualTo) {
                            found = dockeyesFrame(item, x, y, w, h);
                        }
                        CFRelease(value);
                    }
                }
                CFRelease(wanted);
                CFRelease(items);
            }
        }
        if (children != NULL) {
            CFRelease(children);
        }
        CFRelease(app);
        return found;
    }
}

static void dockeyesSetDockImage(const void *data, int length) {
    @autoreleasepool {
        NSData *imageData = [NSData dataWithBytes:data length:length];
        dispatch_async(dispatch_get_main_queue(), ^{
            NSImage *image = [[NSImage alloc] initWithData:imageData];
            if (image != nil) {
                [NSApp setApplicationIconImage:image];
                [image release];
            }
        });
    }
}

static int dockeyesActivateApp(const char *bundleID) {
    @autoreleasepool {
        NSString *identifier = [NSString stringWithUTF8String:bundleID];
        NSRunningApplication *app = [[NSRunningApplication runningApplicationsWithBundleIdentifier:identifier] firstObject];
        if (app == nil) {
            return 0;
        }
        return [app activateWithOptions:0] ? 1 : 0;
    }
}
*/
import "C"

import (
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"unsafe"

	"dockeyes/internal/core/model"
)

func (service *platformService) Trusted() bool {
	return C.dockeyesTrusted() == 1
}

func (service *platformService) PromptPermission() {
	C.dockeyesPrompt()
}

func (service *platformService) LocateIcon(ctx context.Context) (model.IconGeometry, error) {
	if err := ctx.Err(); err != nil {
		return model.IconGeometry{}, err
	}
	if !service.Trusted() {
		return model.IconGeometry{}, ErrPermissionDenied
	}

	title := C.CString(service.iconTitle())
	defer C.free(unsafe.Pointer(title))

	var x, y, width, height C.double
	if C.dockeyesLocateIcon(title, &x, &y, &width, &height) == 0 {
		return model.IconGeometry{}, ErrIconUnavailable
	}
	return model.IconGeometry{
		Position: model.Point{X: float64(x), Y: float64(y)},
		Size:     model.Size{Width: float64(width), Height: float64(height)},
	}, nil
}

func (service *platformService) ScreenHeight() (float64, error) {
	height := float64(C.dockeyesScreenHeight())
	if height <= 0 {
		return 0, fmt.Errorf("screen height: no screen attached")
	}
	return height, nil
}

func (service *platformService) PointerLocation() (model.Point, error) {
	var x, y C.double
	C.dockeyesMouseLocation(&x, &y)
	return model.Point{X: float64(x), Y: float64(y)}, nil
}

func (service *platformService) SetDockImage(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("set dock image: empty image")
	}
	C.dockeyesSetDockImage(unsafe.Pointer(&data[0]), C.int(len(data)))
	return nil
}

func (service *platformService) ActivateFileManager() error {
	if !service.Trusted() {
		return ErrPermissionDenied
	}
	bundleID := C.CString(FileManagerBundleID)
	defer C.free(unsafe.Pointer(bundleID))
	if C.dockeyesActivateApp(bundleID) == 0 {
		return fmt.Errorf("activate %s: not running", FileManagerBundleID)
	}
	return nil
}

func (service *platformService) OpenFileManager() error {
	if !service.Trusted() {
		return ErrPermissionDenied
	}
	output, err := exec.Command("open", "-b", FileManagerBundleID).CombinedOutput()
	if err != nil {
		return fmt.Errorf("open %s: %w: %s", FileManagerBundleID, err, strings.TrimSpace(string(output)))
	}
	return nil
}

// iconTitle prefers the name the Dock shows for this bundle.
func (service *platformService) iconTitle() string {
	name := C.dockeyesAppName()
	if name == nil {
		return service.appName
	}
	defer C.free(unsafe.Pointer(name))
	return C.GoString(name)
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "Library", "Application Support")
}
