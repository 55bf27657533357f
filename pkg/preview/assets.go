package preview

// Stylesheet positions containers, animates toasts and shows the overlay.
// Per-element colors and theme properties arrive as inline styles.
const Stylesheet = `
body{margin:0;font-family:system-ui,-apple-system,"Segoe UI",sans-serif;}
.bfkr-toast-container{position:fixed;z-index:9999;display:flex;flex-direction:column;gap:10px;padding:16px;pointer-events:none;}
.bfkr-top-right{top:0;right:0;align-items:flex-end;}
.bfkr-top-left{top:0;left:0;align-items:flex-start;}
.bfkr-top-center{top:0;left:50%;transform:translateX(-50%);align-items:center;}
.bfkr-bottom-right{bottom:0;right:0;align-items:flex-end;flex-direction:column-reverse;}
.bfkr-bottom-left{bottom:0;left:0;align-items:flex-start;flex-direction:column-reverse;}
.bfkr-bottom-center{bottom:0;left:50%;transform:translateX(-50%);align-items:center;flex-direction:column-reverse;}
.bfkr-toast{pointer-events:auto;position:relative;overflow:hidden;display:flex;align-items:flex-start;gap:10px;min-width:260px;max-width:380px;padding:12px 16px;border-radius:8px;box-shadow:0 6px 20px rgba(0,0,0,.18);}
.bfkr-toast-content{flex:1;}
.bfkr-toast-title{font-weight:700;font-size:12px;letter-spacing:.04em;margin-bottom:2px;}
.bfkr-toast-close{cursor:pointer;opacity:.8;}
.bfkr-toast-action{margin-top:6px;padding:4px 10px;border:1px solid currentColor;border-radius:6px;background:transparent;color:inherit;cursor:pointer;}
.bfkr-progress{position:absolute;left:0;bottom:0;height:3px;width:100%;background:rgba(255,255,255,.6);transform-origin:left;animation-name:bfkr-progress;animation-timing-function:linear;animation-fill-mode:forwards;}
@keyframes bfkr-progress{from{transform:scaleX(1);}to{transform:scaleX(0);}}
.bfkr-animate-slide{animation:bfkr-slide .25s ease-out;}
.bfkr-animate-fade{animation:bfkr-fade .25s ease-out;}
.bfkr-animate-zoom{animation:bfkr-zoom .25s ease-out;}
.bfkr-animate-pop{animation:bfkr-pop .3s cubic-bezier(.2,1.4,.4,1);}
.bfkr-animate-ease-out{opacity:0;transform:translateX(20px);transition:opacity .25s,transform .25s;}
@keyframes bfkr-slide{from{transform:translateX(40px);opacity:0;}to{transform:none;opacity:1;}}
@keyframes bfkr-fade{from{opacity:0;}to{opacity:1;}}
@keyframes bfkr-zoom{from{transform:scale(.8);opacity:0;}to{transform:none;opacity:1;}}
@keyframes bfkr-pop{from{transform:scale(.5);opacity:0;}to{transform:none;opacity:1;}}
#bfkr-dialog-overlay{position:fixed;inset:0;z-index:10000;display:none;align-items:center;justify-content:center;background:rgba(0,0,0,.45);}
#bfkr-dialog-overlay.bfkr-show{display:flex;}
#bfkr-dialog-box{max-width:90vw;padding:24px;border-radius:12px;background:#fff;text-align:center;}
#bfkr-dialog-icon{width:48px;height:48px;margin:0 auto 12px;border-radius:50%;display:flex;align-items:center;justify-content:center;font-size:22px;}
#bfkr-dialog-title{font-weight:700;font-size:18px;margin-bottom:6px;}
#bfkr-dialog-message{margin-bottom:16px;}
#bfkr-dialog-input{width:100%;box-sizing:border-box;padding:8px 10px;margin-bottom:16px;border:1px solid #d1d5db;border-radius:6px;}
#bfkr-dialog-buttons{display:flex;gap:8px;justify-content:center;}
#bfkr-dialog-buttons button{padding:8px 18px;border:none;border-radius:6px;cursor:pointer;font-weight:600;}
.bfkr-hidden{display:none !important;}
`

// ClientScript keeps the page in sync with the server tree and forwards
// click and input events for elements carrying data-hid.
const ClientScript = `
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;
    var ws = null;

    function send(ev) {
        if (ws && ws.readyState === WebSocket.OPEN) {
            ws.send(JSON.stringify(ev));
        }
    }

    function replaceBody(html) {
        var active = document.activeElement;
        var hid = active && active.getAttribute ? active.getAttribute('data-hid') : null;
        var start = hid ? active.selectionStart : null;

        Array.prototype.slice.call(document.body.childNodes).forEach(function(n) {
            if (n.tagName !== 'SCRIPT') {
                n.remove();
            }
        });
        document.body.insertAdjacentHTML('afterbegin', html);

        if (hid) {
            var el = document.querySelector('[data-hid="' + hid + '"]');
            if (el) {
                el.focus();
                if (start !== null && el.setSelectionRange) {
                    el.setSelectionRange(start, start);
                }
            }
        }
    }

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        ws = new WebSocket(protocol + '//' + location.host + '/ws');

        ws.onopen = function() {
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            switch (msg.type) {
                case 'html':
                    replaceBody(msg.html);
                    break;

                case 'result':
                    console.log('[bfkr]', msg.kind, msg.result, msg.value || '');
                    break;
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    document.addEventListener('click', function(e) {
        var el = e.target.closest('[data-on-click]');
        if (el) {
            send({hid: el.getAttribute('data-hid'), event: 'click'});
        }
    });

    document.addEventListener('input', function(e) {
        var el = e.target;
        if (el.getAttribute && el.getAttribute('data-hid')) {
            send({hid: el.getAttribute('data-hid'), event: 'input', value: el.value});
        }
    });

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
`
